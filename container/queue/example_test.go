package queue_test

import (
	"errors"
	"fmt"

	"github.com/tezrry/lineup/container/queue"
	lineup_errors "github.com/tezrry/lineup/pkg/errors"
)

func ExampleSeqQueue() {
	q := queue.NewSeqQueue([]int{1, 2, 3, 4, 5})
	q.Enqueue(6)
	q.Dequeue()
	_ = q.RemoveFirst()
	_ = q.RemoveAt(1)
	fmt.Println(q)

	err := q.RemoveAt(uint(q.Len()))
	fmt.Println(errors.Is(err, lineup_errors.ErrIndexOutOfBounds))

	q.Destroy()
	fmt.Println(q.Len())
	// Output:
	// [2 4 5]
	// true
	// 0
}
