package todo

import "testing"

func TestSortByPriority(t *testing.T) {
	tasks := []Task{
		{Title: "low", Priority: PriorityLow},
		{Title: "first medium", Priority: PriorityMedium},
		{Title: "high", Priority: PriorityHigh},
		{Title: "second medium", Priority: PriorityMedium},
	}

	SortByPriority(tasks)

	want := []string{"high", "first medium", "second medium", "low"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Fatalf("expected %q at position %d, got %+v", title, i, tasks)
		}
	}
}
