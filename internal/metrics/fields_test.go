package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrMethod == "" || AttrPath == "" || AttrStatus == "" || AttrOperation == "" || AttrKind == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
}

func TestOperationNamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range []string{OpStart, OpUpdate, OpFinish, OpGet} {
		if seen[op] {
			t.Fatalf("duplicate operation name %q", op)
		}
		seen[op] = true
	}
}
