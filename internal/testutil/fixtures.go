package testutil

// HelloWorld prints HelloWorldOutput. It never moves left of its start cell.
const HelloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

// HelloWorldOutput is the exact output of HelloWorld.
const HelloWorldOutput = "Hello World!\n"

// Commented is HelloWorld split over lines with comments mixed in.
const Commented = `Set the counter to eight
++++++++
[ loop over four cells
  >++++[>++>+++>+++>+<<<<-]
  >+>+>->>+[<]<-
]
print: >>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
done`

// Transfer adds the start cell into the next cell and clears the start cell.
const Transfer = `+[->+<]`

// Nested runs an outer loop three times; the inner loop is skipped the first
// time round and entered afterwards.
const Nested = `+++[>[-]<->+<]`
