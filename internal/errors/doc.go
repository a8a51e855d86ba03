// Package errors provides structured, actionable error messages for vango-jsx.
//
// Every error carries a code that maps to a registered template:
//
//   - E100-E119 tree: element descriptions that cannot be decoded
//   - E120-E139 config: jsx.json loading and validation
//   - E140-E159 wire: snapshot encoding and decoding
//   - E160-E179 transform: dynamic type conflicts inside a property bag
//   - E180-E199 cli: command line usage
//
// # Usage
//
//	err := errors.New("E100").
//	    WithLocation("tree.yaml", 4, 3).
//	    WithSuggestion("Give every element a \"tag\" field")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E100: Invalid element description
//	//
//	//   tree.yaml:4:3
//	//
//	//       2 │   - tag: li
//	//       3 │     children: [one]
//	//   →   4 │   - props: {}
//	//         │   ^
//	//
//	//   Hint: Give every element a "tag" field
//
// Errors raised from inside the transform are panics carrying an *Error; see
// vnode.Try for the recovering wrapper.
package errors
