package domain

// Move lifts the task at source out of the list, reinserts it at destination,
// and re-assigns every Order field to its positional index. It returns the new
// sequence, or nil when the gesture is a no-op (source == destination or source
// out of range). Destination is clamped into range, matching how a drop past
// either end of the list behaves.
func Move(tasks []*Task, source, destination int) []*Task {
	if source < 0 || source >= len(tasks) {
		return nil
	}
	if destination < 0 {
		destination = 0
	}
	if destination >= len(tasks) {
		destination = len(tasks) - 1
	}
	if source == destination {
		return nil
	}

	result := make([]*Task, 0, len(tasks))
	result = append(result, tasks[:source]...)
	result = append(result, tasks[source+1:]...)

	result = append(result, nil)
	copy(result[destination+1:], result[destination:])
	result[destination] = tasks[source]

	for i, t := range result {
		t.Order = i
	}
	return result
}

// IDs returns the task ids in slice order.
func IDs(tasks []*Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
