// Package auth resolves which user a request may read or write. Every
// planner operation passes through the resolver before touching any data.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/calwells/degreeplanner/internal/app/models"
	"github.com/calwells/degreeplanner/internal/app/repositories"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	"github.com/calwells/degreeplanner/internal/pkg/logger"
)

// Resolution is the outcome of a successful access resolution. Subject is the
// user whose plan data is being read or written; Actor is the authenticated
// caller. They are the same user except when faculty act on an advisee.
type Resolution struct {
	Subject *models.User
	Actor   *models.User
}

// ActorIsFaculty reports whether the caller holds the faculty role.
func (r *Resolution) ActorIsFaculty() bool {
	return r.Actor.Role == models.RoleFaculty
}

// AccessResolver decides whether a caller may act on a subject's records.
type AccessResolver struct {
	userRepo repositories.IUserRepository
}

// NewAccessResolver creates a new AccessResolver
func NewAccessResolver(userRepo repositories.IUserRepository) *AccessResolver {
	return &AccessResolver{
		userRepo: userRepo,
	}
}

// Resolve maps a verified caller id and an optional target student id to a
// (subject, actor) pair. The decision tree has four named branches:
//
//   - self-student: no target id; a student acts on their own records.
//     Faculty without a target id are rejected, they always act through the
//     advisee-targeting path.
//   - self-student-with-redundant-id: a student supplies their own id as the
//     target; treated exactly like self-student. Any other id is rejected.
//   - faculty-on-advisee: a faculty caller targets a student in their advisee
//     list whose recorded advisor matches the caller.
//   - stale-link-pruned: the targeted advisee no longer exists; the dangling
//     id is removed from the caller's advisee list and the request rejected.
//
// Every rejection surfaces as ErrUnauthorized so callers cannot probe which
// check failed.
func (r *AccessResolver) Resolve(ctx context.Context, callerID, targetID string) (*Resolution, error) {
	caller, err := r.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("error resolving caller: %w", err)
	}

	if targetID == "" {
		return r.resolveSelf(caller)
	}

	if caller.Role == models.RoleStudent {
		return r.resolveSelfWithID(caller, targetID)
	}

	return r.resolveFacultyOnAdvisee(ctx, caller, targetID)
}

// resolveSelf handles the self-student branch.
func (r *AccessResolver) resolveSelf(caller *models.User) (*Resolution, error) {
	if caller.Role == models.RoleFaculty {
		return nil, apperrors.ErrUnauthorized
	}

	return &Resolution{Subject: caller, Actor: caller}, nil
}

// resolveSelfWithID handles the self-student-with-redundant-id branch.
// A student can never act on another student's records.
func (r *AccessResolver) resolveSelfWithID(caller *models.User, targetID string) (*Resolution, error) {
	if caller.UserID != targetID {
		return nil, apperrors.ErrUnauthorized
	}

	return &Resolution{Subject: caller, Actor: caller}, nil
}

// resolveFacultyOnAdvisee handles the faculty-on-advisee branch, including
// the stale-link-pruned outcome.
func (r *AccessResolver) resolveFacultyOnAdvisee(ctx context.Context, caller *models.User, targetID string) (*Resolution, error) {
	if !caller.HasAdvisee(targetID) {
		return nil, apperrors.ErrUnauthorized
	}

	subject, err := r.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// The advisee record is gone; prune the dangling link so the
			// faculty's list heals itself, then reject.
			if pruneErr := r.userRepo.RemoveAdvisee(ctx, caller.UserID, targetID); pruneErr != nil {
				logger.Warn().Err(pruneErr).
					Str("facultyId", caller.UserID).
					Str("adviseeId", targetID).
					Msg("Failed to prune stale advisee link")
			}
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("error resolving advisee: %w", err)
	}

	// Guard against stale advisee lists that overlap another advisor's
	// students: the target's recorded advisor must be the caller.
	if subject.Advisor == nil || *subject.Advisor != caller.UserID {
		return nil, apperrors.ErrUnauthorized
	}

	return &Resolution{Subject: subject, Actor: caller}, nil
}
