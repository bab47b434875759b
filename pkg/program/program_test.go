package program

import "testing"

func TestOrdersAreSortedAfterFinalize(t *testing.T) {
	p := New()
	p.Add(30, Instruction{Opcode: "NOP"})
	p.Add(10, Instruction{Opcode: "NOP"})
	p.Add(20, Instruction{Opcode: "NOP"})
	p.Finalize()

	want := []int{10, 20, 30}
	got := p.Orders()
	if len(got) != len(want) {
		t.Fatalf("Orders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Orders()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestScanLabelsRejectsDuplicates(t *testing.T) {
	p := New()
	p.Add(1, Instruction{Opcode: "LABEL", Args: map[int]Arg{1: {Tag: ArgLabel, Label: "x"}}})
	p.Add(2, Instruction{Opcode: "LABEL", Args: map[int]Arg{1: {Tag: ArgLabel, Label: "x"}}})
	p.Finalize()

	if _, err := ScanLabels(p); err == nil {
		t.Fatal("expected a duplicate-label error")
	}
}

func TestScanLabelsMapsNameToOrder(t *testing.T) {
	p := New()
	p.Add(5, Instruction{Opcode: "LABEL", Args: map[int]Arg{1: {Tag: ArgLabel, Label: "loop"}}})
	p.Add(1, Instruction{Opcode: "NOP"})
	p.Finalize()

	labels, err := ScanLabels(p)
	if err != nil {
		t.Fatalf("ScanLabels failed: %v", err)
	}
	if labels["loop"] != 5 {
		t.Fatalf("labels[loop] = %d, want 5", labels["loop"])
	}
}
