package subjects

import (
	"testing"

	catalogdto "studytracker/internal/modules/catalog/dto"
)

func TestFlattenOrdersSubjectChapterTask(t *testing.T) {
	t.Parallel()
	rows := flatten([]catalogdto.SubjectOutput{
		{ID: "s1", Name: "Math", Chapters: []catalogdto.ChapterOutput{
			{ID: "c1", Name: "Algebra", Tasks: []catalogdto.TaskOutput{{ID: "t1", Name: "Exercises", Completed: true}}},
		}},
		{ID: "s2", Name: "History"},
	})
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	want := []rowKind{rowSubject, rowChapter, rowTask, rowSubject}
	for i, kind := range want {
		if rows[i].kind != kind {
			t.Fatalf("row %d: expected kind %d, got %d", i, kind, rows[i].kind)
		}
	}
	if rows[2].subjectID != "s1" || rows[2].chapterID != "c1" || !rows[2].done {
		t.Fatalf("task row lost its parents: %+v", rows[2])
	}
}

func TestSelectionFollowsCursor(t *testing.T) {
	t.Parallel()
	m := New(nil)
	m, _ = m.Update(LoadedMsg{Subjects: []catalogdto.SubjectOutput{
		{ID: "s1", Name: "Math", Chapters: []catalogdto.ChapterOutput{{ID: "c1", Name: "Algebra"}}},
	}})
	if id, ok := m.SelectedSubjectID(); !ok || id != "s1" {
		t.Fatalf("expected s1 selected, got %q %v", id, ok)
	}

	m, _ = m.Update(LoadedMsg{})
	if _, ok := m.SelectedSubjectID(); ok {
		t.Fatal("expected no selection on an empty catalog")
	}
}
