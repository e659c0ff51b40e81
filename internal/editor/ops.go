// Package editor provides the value-oriented update operations the per-
// section editors apply to a canonical CV, plus the decoding path that
// rehydrates persisted records.
package editor

// Identifiable is any CV list entry addressable by id.
type Identifiable interface {
	ItemID() string
}

// reconciler is implemented by entries that carry the current/endDate pair;
// updates re-establish the exclusivity after every patch.
type reconciler interface {
	Reconcile()
}

// Direction moves an entry one step within its list.
type Direction int

// Move directions.
const (
	MoveUp   Direction = -1
	MoveDown Direction = 1
)

// AddItem returns a new list with the item appended. The input list is never
// mutated.
func AddItem[T Identifiable](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, item)
	return out
}

// UpdateItem returns a new list where the entry with the given id has the
// patch applied. Unknown ids return the list unchanged. Entries with a
// current/endDate pair are reconciled after the patch, so setting
// current=true always clears the end date in the same update.
func UpdateItem[T Identifiable](list []T, id string, patch func(*T)) []T {
	idx := indexOf(list, id)
	if idx < 0 {
		return list
	}

	out := make([]T, len(list))
	copy(out, list)
	patch(&out[idx])
	if r, ok := any(&out[idx]).(reconciler); ok {
		r.Reconcile()
	}
	return out
}

// RemoveItem returns a new list without the entry carrying the given id.
// Removed ids are never reused within a session; callers generate fresh ids
// for later additions.
func RemoveItem[T Identifiable](list []T, id string) []T {
	idx := indexOf(list, id)
	if idx < 0 {
		return list
	}

	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return out
}

// MoveItem returns a new list with the entry shifted one step up or down.
// Moves past either end return the list unchanged.
func MoveItem[T Identifiable](list []T, id string, dir Direction) []T {
	idx := indexOf(list, id)
	if idx < 0 {
		return list
	}
	swap := idx + int(dir)
	if swap < 0 || swap >= len(list) {
		return list
	}

	out := make([]T, len(list))
	copy(out, list)
	out[idx], out[swap] = out[swap], out[idx]
	return out
}

func indexOf[T Identifiable](list []T, id string) int {
	for i, item := range list {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}
