package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study-planner/internal/model"
)

// SubjectRepository manages subjects and their notes.
type SubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	if err := r.db.WithContext(ctx).Create(subject).Error; err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

func (r *SubjectRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*model.Subject, error) {
	if name == "" {
		return nil, nil
	}

	var subject model.Subject
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&subject).Error
	switch {
	case err == nil:
		return &subject, nil
	case err == gorm.ErrRecordNotFound:
		subject = model.Subject{UserID: userID, Name: name}
		if err := db.Create(&subject).Error; err != nil {
			return nil, fmt.Errorf("create subject: %w", err)
		}
		return &subject, nil
	default:
		return nil, fmt.Errorf("find subject: %w", err)
	}
}

func (r *SubjectRepository) ListByUser(ctx context.Context, userID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *SubjectRepository) FindByID(ctx context.Context, userID, subjectID uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, subjectID).First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	if err := r.db.WithContext(ctx).Save(subject).Error; err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	return nil
}

// Delete removes a subject together with its tasks and notes.
func (r *SubjectRepository) Delete(ctx context.Context, userID, subjectID uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ? AND subject_id = ?", userID, subjectID).Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete subject tasks: %w", err)
	}
	if err := db.Where("user_id = ? AND subject_id = ?", userID, subjectID).Delete(&model.SubjectNote{}).Error; err != nil {
		return fmt.Errorf("delete subject notes: %w", err)
	}
	if err := db.Where("user_id = ? AND id = ?", userID, subjectID).Delete(&model.Subject{}).Error; err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

func (r *SubjectRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&model.SubjectNote{}).Error; err != nil {
		return fmt.Errorf("delete user subject notes: %w", err)
	}
	if err := db.Where("user_id = ?", userID).Delete(&model.Subject{}).Error; err != nil {
		return fmt.Errorf("delete user subjects: %w", err)
	}
	return nil
}

// Notes

func (r *SubjectRepository) CreateNote(ctx context.Context, note *model.SubjectNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create subject note: %w", err)
	}
	return nil
}

func (r *SubjectRepository) ListNotes(ctx context.Context, userID, subjectID uint) ([]model.SubjectNote, error) {
	var notes []model.SubjectNote
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Order("updated_at DESC, created_at DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *SubjectRepository) FindNoteByID(ctx context.Context, userID, noteID uint) (*model.SubjectNote, error) {
	var note model.SubjectNote
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, noteID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *SubjectRepository) UpdateNote(ctx context.Context, note *model.SubjectNote) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("update subject note: %w", err)
	}
	return nil
}

func (r *SubjectRepository) DeleteNote(ctx context.Context, userID, noteID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, noteID).
		Delete(&model.SubjectNote{}).Error; err != nil {
		return fmt.Errorf("delete subject note: %w", err)
	}
	return nil
}
