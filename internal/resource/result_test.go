package resource

import "testing"

func TestConstructorsAndPredicates(t *testing.T) {
	l := Loading[int]()
	if !l.IsLoading() || l.IsSuccess() || l.IsError() {
		t.Fatalf("Loading predicates wrong: %+v", l)
	}

	s := Success(42)
	if !s.IsSuccess() || s.IsLoading() || s.IsError() {
		t.Fatalf("Success predicates wrong: %+v", s)
	}
	if s.Value != 42 {
		t.Fatalf("Success value = %d, want 42", s.Value)
	}

	e := Failure[int]("boom")
	if !e.IsError() || e.IsLoading() || e.IsSuccess() {
		t.Fatalf("Failure predicates wrong: %+v", e)
	}
	if e.Message != "boom" {
		t.Fatalf("Failure message = %q, want %q", e.Message, "boom")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateLoading: "loading",
		StateSuccess: "success",
		StateError:   "error",
		State(99):    "unknown",
	}
	for st, want := range cases {
		if got := st.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", st, got, want)
		}
	}
}
