// Package collectgo provides generic, manually capacity-managed container
// types for Go.
//
// Every container owns its backing storage outright and re-implements its own
// growth, shrink, and slot-lifetime policy instead of delegating to append or
// the built-in map. That makes the containers suitable as teaching material
// for amortized-capacity analysis and as instrumentable storage for algorithm
// visualization: the dynamicarray package exposes a per-step Observer hook,
// and every container exposes its iteration order through iter.Seq.
//
// # Containers
//
//   - dynamicarray: contiguous growable buffer with index-based insert/remove
//   - queue: FIFO ring buffer sharing the dynamic array's slot storage
//   - stack: LIFO adapter over the dynamic array
//   - hashmap: open-addressing hash table with tombstone deletion
//   - heap: node-linked min/max binary heap over a complete tree
//   - binarytree: level-order binary tree and ordered binary search tree
//   - linkedlist: doubly linked list
//
// # Quick Start
//
//	arr := dynamicarray.New[int]()
//	arr.Add(5)
//	_ = arr.InsertAt(0, 4)
//
//	q := queue.New[string]()
//	q.Enqueue("a")
//	v, err := q.Dequeue()
//
//	m := hashmap.New[string, int]()
//	m.Insert("answer", 42)
//	v, err := m.At("answer")
//
// # Errors
//
// All containers report failures through the shared taxonomy in this package:
// IndexError for out-of-range indices, ErrEmpty for reads from empty
// containers, AllocationError when growth would exceed the capacity ceiling,
// and ErrNotFound for absent hash-map keys. A failed operation never leaves a
// container partially mutated; reallocation paths build the replacement
// buffer fully before swapping it in.
//
// # Concurrency
//
// None of the containers synchronize access. Callers that share a container
// across goroutines must supply their own locking.
package collectgo
