package csvio

// Sample is the fixed CSV template served to operators as a starting point.
// Importing it yields exactly these four rows.
const Sample = `name,variant,qty,price,date
Design,Gildan H000 Black S,10,25.00,2024-10-28
Design,Gildan H000 Black M,5,45.00,2024-10-26
Design,Gildan H000 Black L,8,30.00,2024-10-29
Design,Gildan H000 White M,12,28.50,2024-10-30
`
