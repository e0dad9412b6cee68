package schema

// FieldChange represents a difference between two proposals for one field.
type FieldChange struct {
	Name string

	// Old is nil when the field was added, New is nil when it was removed.
	Old *Field
	New *Field
}

// FindChanges compares two field lists by name and returns the changes:
// added and modified fields in the new list's order, then removed fields in
// the old list's order. Sample previews are ignored in the comparison.
func FindChanges(prev, curr []Field) []FieldChange {
	prevByName := make(map[string]Field, len(prev))
	for _, field := range prev {
		prevByName[field.Name] = field
	}
	currByName := make(map[string]Field, len(curr))
	for _, field := range curr {
		currByName[field.Name] = field
	}

	var changes []FieldChange

	for _, newField := range curr {
		oldField, exists := prevByName[newField.Name]
		if !exists {
			field := newField
			changes = append(changes, FieldChange{Name: newField.Name, New: &field})
			continue
		}
		if !fieldsEqual(oldField, newField) {
			oldCopy, newCopy := oldField, newField
			changes = append(changes, FieldChange{Name: newField.Name, Old: &oldCopy, New: &newCopy})
		}
	}

	for _, oldField := range prev {
		if _, exists := currByName[oldField.Name]; !exists {
			field := oldField
			changes = append(changes, FieldChange{Name: oldField.Name, Old: &field})
		}
	}

	return changes
}

func fieldsEqual(a, b Field) bool {
	return a.Type == b.Type &&
		a.Nullable == b.Nullable &&
		a.MultiValued == b.MultiValued &&
		a.RecommendedLength == b.RecommendedLength
}
