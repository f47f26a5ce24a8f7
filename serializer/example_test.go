package serializer_test

import (
	"fmt"

	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/value"
)

func ExampleSerialize() {
	doc := value.NewObject().
		Set("id", 7).
		Set("samples", value.NewArray(1, 2, 3, 4, 5, 6))
	doc.Set("self", doc)

	res := serializer.Serialize(doc,
		serializer.WithIndentWidth(2),
		serializer.WithMaxArraySize(4),
	)
	fmt.Println(res.Text)
	fmt.Println(res.CircularRefs, res.TrimmedArrays)
	// Output:
	// {
	//   "id": 7,
	//   "samples": [1, 2, 3, "…3 more items…"],
	//   "self": "<<circular ref to the root object>>"
	// }
	// 1 1
}

func ExampleStringifyIndent() {
	doc, _ := value.Parse([]byte(`{"b": [1, 2], "a": {}}`))
	fmt.Println(serializer.StringifyIndent(doc, "  "))
	// Output:
	// {
	//   "b": [
	//     1,
	//     2
	//   ],
	//   "a": {}
	// }
}
