package abelfunctions

import (
	"fmt"
	"math/cmplx"
)

func ExampleSmaleContinuator_Continue() {
	// f(x, y) = y³ − x³y + 2x⁷
	f, _ := NewPoly(map[[2]int]complex128{
		{0, 3}: 1,
		{3, 1}: -1,
		{7, 0}: 2,
	})
	cont := NewSmaleContinuator(f)

	// The three y-roots above x = 1, continued to x = 1 + i/2.
	ys, _ := Roots(f.EvalY(1))
	fib, err := cont.Continue(1, NewFibre(ys), 1+0.5i)
	if err != nil {
		fmt.Println(err)
		return
	}
	ok := true
	for i := 0; i < fib.Len(); i++ {
		if cmplx.Abs(f.Eval(1+0.5i, fib.Sheet(i))) > 1e-10 {
			ok = false
		}
	}
	fmt.Println(fib.Len(), ok)
	// Output: 3 true
}

func ExampleRiemannSurface_Genus() {
	// The elliptic curve y² = x³ − x branches over −1, 0, 1 and infinity.
	f, _ := NewPoly(map[[2]int]complex128{
		{0, 2}: 1,
		{3, 0}: -1,
		{1, 0}: 1,
	})
	rs, err := NewRiemannSurface(f, []complex128{-1, 0, 1}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := rs.Genus()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)
	// Output: 1
}
