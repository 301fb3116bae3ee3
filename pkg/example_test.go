package pkg_test

import (
	"fmt"

	"huffar/pkg"
)

func Example() {
	c, err := pkg.Encode([]byte("aaaaaaaab"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("payload % x, padding %d, container %d bytes\n", c.Payload, c.Padding, c.Size())

	out, err := pkg.Decode(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// payload ff 00, padding 7, container 25 bytes
	// aaaaaaaab
}
