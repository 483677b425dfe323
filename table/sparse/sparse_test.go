package sparse

import "testing"

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(4, 5, DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 0, 1)
	M.Set(3, 4, 9)
	M.Set(2, 1, 7)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(1, 1); v != M.NullValue() {
		t.Errorf("expected M(1,1) to be null, is %d", v)
	}
	M.Set(2, 3, 42)
	if v := M.Value(2, 3); v != 42 {
		t.Errorf("expected M(2,3) to be overwritten with 42, is %d", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values, have %d", M.ValueCount())
	}
}

func TestEachIsRowMajor(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 0, 3).Set(0, 2, 1).Set(1, 1, 2).Set(0, 1, -1)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Errorf("expected values 1,2,3 in row-major order, have %v", seen)
	}
}

func TestSetOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 1)
}
