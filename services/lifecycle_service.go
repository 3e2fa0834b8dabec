package services

import (
	"time"

	"manuscript-review/models"
	"manuscript-review/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LifecycleService is the sole writer of article status, approval fields,
// editor assignment and ledger activity. Every operation is one database
// transaction: the precondition check and the resulting writes commit or
// roll back together, so a failed transition leaves the article exactly
// as it was.
//
// Legal transitions:
//
//	PENDING   -> SUBMITTED  (Approve, admin)
//	PENDING   -> REJECTED   (Reject, admin)
//	SUBMITTED -> IN_REVIEW  (Claim, editor with matching specialization)
//	IN_REVIEW -> COMPLETED  (Submit, the assigned editor)
//
// COMPLETED and REJECTED are terminal.
type LifecycleService interface {
	Approve(articleID, approverID uint) (*models.Article, error)
	Reject(articleID, approverID uint, reason string) (*models.Article, error)
	Claim(articleID uint, editor *models.Editor) (*models.Article, error)
	Submit(articleID uint, editor *models.Editor, editedFileKey, comments string) (*models.Article, error)
}

type lifecycleService struct {
	db             *gorm.DB
	articleRepo    repositories.ArticleRepository
	assignmentRepo repositories.AssignmentRepository
	log            *zap.Logger
}

func NewLifecycleService(db *gorm.DB, articleRepo repositories.ArticleRepository, assignmentRepo repositories.AssignmentRepository, log *zap.Logger) LifecycleService {
	return &lifecycleService{
		db:             db,
		articleRepo:    articleRepo,
		assignmentRepo: assignmentRepo,
		log:            log,
	}
}

func (s *lifecycleService) Approve(articleID, approverID uint) (*models.Article, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		article, err := s.articleRepo.GetByIDTx(tx, articleID)
		if err != nil {
			return err
		}

		now := time.Now()
		rows, err := s.articleRepo.UpdateWhereStatus(tx, articleID, models.StatusPending, map[string]interface{}{
			"status":         models.StatusSubmitted,
			"is_approved":    true,
			"approved_at":    now,
			"approved_by_id": approverID,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.InvalidStateError{Op: "approve", Current: article.Status}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(articleID)
}

func (s *lifecycleService) Reject(articleID, approverID uint, reason string) (*models.Article, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		article, err := s.articleRepo.GetByIDTx(tx, articleID)
		if err != nil {
			return err
		}

		rows, err := s.articleRepo.UpdateWhereStatus(tx, articleID, models.StatusPending, map[string]interface{}{
			"status":   models.StatusRejected,
			"comments": reason,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.InvalidStateError{Op: "reject", Current: article.Status}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(articleID)
}

// Claim binds the editor to a submitted, approved article. The
// specialization check runs here at write time, not just in the
// availability query, so a stale listing cannot slip a mismatched claim
// through. Exactly one of N concurrent claims wins: the ledger's unique
// index rejects a second active row and the conditional status update
// rejects a claim on an article that already left SUBMITTED.
func (s *lifecycleService) Claim(articleID uint, editor *models.Editor) (*models.Article, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		article, err := s.articleRepo.GetByIDTx(tx, articleID)
		if err != nil {
			return err
		}

		if article.Status != models.StatusSubmitted || !article.IsApproved {
			return models.InvalidStateError{Op: "claim", Current: article.Status}
		}
		if article.EditType != editor.Specialization {
			return models.SpecializationMismatchError{
				EditorSpecialization: editor.Specialization,
				ArticleEditType:      article.EditType,
			}
		}

		assignment := &models.Assignment{
			ArticleID:  articleID,
			EditorID:   editor.ID,
			AssignedAt: time.Now(),
			IsActive:   true,
		}
		if err := s.assignmentRepo.Create(tx, assignment); err != nil {
			return err
		}

		rows, err := s.articleRepo.UpdateWhereStatus(tx, articleID, models.StatusSubmitted, map[string]interface{}{
			"status":    models.StatusInReview,
			"editor_id": editor.ID,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race after inserting the assignment; roll it all
			// back. Re-read so the error carries the status that rejected
			// the claim, not the snapshot from the top of the transaction.
			fresh, err := s.articleRepo.GetByIDTx(tx, articleID)
			if err != nil {
				return err
			}
			return models.InvalidStateError{Op: "claim", Current: fresh.Status}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(articleID)
}

// Submit records the editor's finished work. The edited content must be
// fully stored before this is called; only its key enters the
// transaction.
func (s *lifecycleService) Submit(articleID uint, editor *models.Editor, editedFileKey, comments string) (*models.Article, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		article, err := s.articleRepo.GetByIDTx(tx, articleID)
		if err != nil {
			return err
		}

		if article.Status != models.StatusInReview || article.EditorID == nil || *article.EditorID != editor.ID {
			return models.NotAssignedError{ArticleID: articleID, EditorID: editor.ID}
		}

		rows, err := s.articleRepo.UpdateWhereStatus(tx, articleID, models.StatusInReview, map[string]interface{}{
			"status":      models.StatusCompleted,
			"edited_file": editedFileKey,
			"comments":    comments,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.NotAssignedError{ArticleID: articleID, EditorID: editor.ID}
		}

		deactivated, err := s.assignmentRepo.Deactivate(tx, articleID, editor.ID)
		if err != nil {
			return err
		}
		if deactivated == 0 {
			// The article says this editor holds it but the ledger has no
			// active row. Abort so the status change rolls back too.
			s.log.Error("assignment ledger out of sync with article",
				zap.Uint("article_id", articleID),
				zap.Uint("editor_id", editor.ID),
			)
			return models.AssignmentNotFoundError{ArticleID: articleID, EditorID: editor.ID}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(articleID)
}
