package avl_test

import (
	"fmt"

	"github.com/katalvlaran/airnet/avl"
)

// ExampleTree indexes reservations by code and lists them in order.
func ExampleTree() {
	idx := avl.New[string, string]()
	idx.Insert("RES-000003", "Ana")
	idx.Insert("RES-000001", "Luis")
	idx.Insert("RES-000002", "Marta")
	idx.Delete("RES-000001")

	for code, who := range idx.All() {
		fmt.Println(code, who)
	}

	// Output:
	// RES-000002 Marta
	// RES-000003 Ana
}
