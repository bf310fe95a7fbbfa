package namedargs_test

import (
	"errors"
	"fmt"

	"namedargs"
)

func ExampleParse() {
	type params struct {
		num int
		str string
	}

	p, err := namedargs.Parse("num = 42, str = 'Hello, world!'", func(a *namedargs.Accessor) (params, error) {
		var p params
		if err := namedargs.AssignOr(a, &p.num, "num", 0); err != nil {
			return p, err
		}
		err := namedargs.AssignOr(a, &p.str, "str", "")
		return p, err
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("num:", p.num)
	fmt.Println("str:", p.str)
	// Output:
	// num: 42
	// str: Hello, world!
}

func ExampleUnmarshal() {
	var opts struct {
		Name    string
		Workers int `nargs:"jobs"`
	}
	opts.Workers = 1

	if err := namedargs.Unmarshal("name = 'indexer'", &opts); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(opts.Name, opts.Workers)
	// Output: indexer 1
}

func ExampleParseArgs_duplicate() {
	_, err := namedargs.ParseArgs("a = 1, b = 2, a = 3")
	fmt.Println(errors.Is(err, namedargs.ErrDuplicateKey))
	fmt.Println(err)
	// Output:
	// true
	// namedargs: 1:15: argument already exists: a
}
