package collectgo_test

import (
	"fmt"

	"github.com/hupe1980/collectgo"
	"github.com/hupe1980/collectgo/dynamicarray"
	"github.com/hupe1980/collectgo/hashmap"
	"github.com/hupe1980/collectgo/heap"
	"github.com/hupe1980/collectgo/queue"
)

func ExampleCountingObserver() {
	// Instrument an array to count element accesses, e.g. while replaying a
	// sorting algorithm.
	obs := &collectgo.CountingObserver{}
	arr := dynamicarray.New[int](dynamicarray.WithObserver(obs))

	for _, v := range []int{3, 1, 2} {
		_ = arr.Add(v)
	}
	_ = arr.Swap(0, 1)
	_, _ = arr.Get(2)

	fmt.Println(obs.Gets, obs.Swaps)
	// Output: 1 1
}

func Example_fifo() {
	q := queue.New[string]()
	_ = q.Enqueue("first")
	_ = q.Enqueue("second")

	v, _ := q.Dequeue()
	fmt.Println(v)
	// Output: first
}

func Example_minHeap() {
	h := heap.NewMin[int]()
	for _, v := range []int{5, 3, 7, 1, 4} {
		h.Insert(v)
	}
	for !h.IsEmpty() {
		v, _ := h.ExtractRoot()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 3 4 5 7
}

func Example_hashMap() {
	m := hashmap.New[string, int]()
	_ = m.Insert("answer", 42)

	if v, err := m.At("answer"); err == nil {
		fmt.Println(v)
	}
	_, err := m.At("missing")
	fmt.Println(err)
	// Output:
	// 42
	// key not found
}
