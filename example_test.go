package relaxed_test

import (
	"context"
	"fmt"
	"time"

	"github.com/relaxed-go/relaxed"
)

func Example() {
	s, r := relaxed.BoundedRelaxingFor[string](8, 10*time.Millisecond)
	defer r.Close()

	go func() {
		defer s.Close()
		for _, word := range []string{"one", "two", "three"} {
			if err := s.SendBlocking(word); err != nil {
				return
			}
		}
	}()

	for word := range r.Stream(context.Background()) {
		fmt.Println(word)
	}
	// Output:
	// one
	// two
	// three
}

func ExampleUnbounded() {
	s, r := relaxed.Unbounded[int]()
	defer r.Close()

	// The raw sender never observes a full channel, so it needs no
	// relaxation and no context.
	for i := 1; i <= 3; i++ {
		if err := s.TrySend(i * i); err != nil {
			return
		}
	}
	s.Close()

	for v := range r.Stream(context.Background()) {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 4
	// 9
}
