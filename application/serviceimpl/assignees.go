package serviceimpl

import (
	"github.com/google/uuid"
)

// diffAssignees คำนวณ minimal add/remove set ที่เปลี่ยน current ให้กลายเป็น desired
// ทั้งสอง slice ถูกมองเป็น set (id ซ้ำนับเป็นตัวเดียว, ไม่สนลำดับ)
func diffAssignees(current, desired []uuid.UUID) (toAdd, toRemove []uuid.UUID) {
	currentSet := toSet(current)
	desiredSet := toSet(desired)

	for id := range desiredSet {
		if !currentSet[id] {
			toAdd = append(toAdd, id)
		}
	}
	for id := range currentSet {
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

func toSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// dedupeIDs คืน ids ที่ไม่ซ้ำ โดยคงลำดับที่เจอครั้งแรก
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
