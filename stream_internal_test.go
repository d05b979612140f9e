package charstream

import "testing"

func TestBufferIndex(t *testing.T) {
	for col := 1; col <= 5; col++ {
		if got := bufferIndex(col); got != col-1 {
			t.Errorf("bufferIndex(%d) = %d, want %d", col, got, col-1)
		}
	}
}

func TestBufferIndexInvalid(t *testing.T) {
	for _, col := range []int{0, -1, -42} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("bufferIndex(%d) did not panic", col)
				}
			}()

			bufferIndex(col)
		}()
	}
}
