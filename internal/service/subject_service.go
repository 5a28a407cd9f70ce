package service

import (
	"context"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// SubjectInput carries the editable fields of a subject.
type SubjectInput struct {
	Name      string
	Teacher   string
	ColorTag  string
	Notes     string
	ShortNote string
	KeyTopics string
}

// SubjectLoad summarizes the open workload of one subject.
type SubjectLoad struct {
	Subject        model.Subject
	TasksRemaining int
	HoursRemaining float64
}

// SubjectService provides subject and subject-note bookkeeping.
type SubjectService struct {
	subjects *repository.SubjectRepository
	tasks    *repository.TaskRepository
}

func NewSubjectService(subjects *repository.SubjectRepository, tasks *repository.TaskRepository) *SubjectService {
	return &SubjectService{subjects: subjects, tasks: tasks}
}

func (s *SubjectService) Create(ctx context.Context, userID uint, input SubjectInput) (*model.Subject, error) {
	if input.Name == "" {
		return nil, &planner.ValidationError{Field: "name", Message: "name is required"}
	}
	subject := model.Subject{
		UserID:    userID,
		Name:      input.Name,
		Teacher:   input.Teacher,
		ColorTag:  input.ColorTag,
		Notes:     input.Notes,
		ShortNote: input.ShortNote,
		KeyTopics: input.KeyTopics,
	}
	if err := s.subjects.Create(ctx, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) Update(ctx context.Context, userID, subjectID uint, input SubjectInput) (*model.Subject, error) {
	if input.Name == "" {
		return nil, &planner.ValidationError{Field: "name", Message: "name is required"}
	}
	subject, err := s.subjects.FindByID(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	subject.Name = input.Name
	subject.Teacher = input.Teacher
	subject.ColorTag = input.ColorTag
	subject.Notes = input.Notes
	subject.ShortNote = input.ShortNote
	subject.KeyTopics = input.KeyTopics
	if err := s.subjects.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Get(ctx context.Context, userID, subjectID uint) (*model.Subject, error) {
	return s.subjects.FindByID(ctx, userID, subjectID)
}

func (s *SubjectService) List(ctx context.Context, userID uint) ([]model.Subject, error) {
	return s.subjects.ListByUser(ctx, userID)
}

// Delete removes a subject and cascades to its tasks and notes.
func (s *SubjectService) Delete(ctx context.Context, userID, subjectID uint) error {
	return s.subjects.Delete(ctx, userID, subjectID)
}

// Breakdown reports remaining task counts and hours per subject, for the
// weekly progress report.
func (s *SubjectService) Breakdown(ctx context.Context, userID uint) ([]SubjectLoad, error) {
	subjects, err := s.subjects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pending, err := s.tasks.ListByStatus(ctx, userID, model.StatusPending)
	if err != nil {
		return nil, err
	}

	loads := make([]SubjectLoad, 0, len(subjects))
	for _, subject := range subjects {
		load := SubjectLoad{Subject: subject}
		for _, task := range pending {
			if task.SubjectID != nil && *task.SubjectID == subject.ID {
				load.TasksRemaining++
				load.HoursRemaining += task.RequiredHours
			}
		}
		loads = append(loads, load)
	}
	return loads, nil
}

// Notes

func (s *SubjectService) AddNote(ctx context.Context, userID, subjectID uint, title, content string) (*model.SubjectNote, error) {
	if title == "" {
		return nil, &planner.ValidationError{Field: "title", Message: "title is required"}
	}
	if _, err := s.subjects.FindByID(ctx, userID, subjectID); err != nil {
		return nil, err
	}
	note := model.SubjectNote{UserID: userID, SubjectID: subjectID, Title: title, Content: content}
	if err := s.subjects.CreateNote(ctx, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *SubjectService) ListNotes(ctx context.Context, userID, subjectID uint) ([]model.SubjectNote, error) {
	return s.subjects.ListNotes(ctx, userID, subjectID)
}

func (s *SubjectService) UpdateNote(ctx context.Context, userID, noteID uint, title, content string) (*model.SubjectNote, error) {
	note, err := s.subjects.FindNoteByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		note.Title = title
	}
	note.Content = content
	if err := s.subjects.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *SubjectService) DeleteNote(ctx context.Context, userID, noteID uint) error {
	return s.subjects.DeleteNote(ctx, userID, noteID)
}
