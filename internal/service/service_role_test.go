// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func newTestRoleService(t *testing.T) (RoleService, *mock.MockRoleRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRoleRepository(ctrl)

	svc, err := NewRoleService(repo, config.Cache{RoleCacheSize: 4}, logger.Nop())
	require.NoError(t, err)
	return svc, repo
}

func TestRoleService_ReservedRolesAreImmutable(t *testing.T) {
	admin := ctxWithCaller(1, models.RoleAdminID)

	for _, id := range []int64{models.RoleAdminID, models.RoleRegularID} {
		svc, repo := newTestRoleService(t)
		repo.EXPECT().FindRoleByID(gomock.Any(), id).Return(models.Role{ID: id}, nil)

		_, err := svc.UpdateRole(admin, models.Role{ID: id, Title: "renamed"})
		assert.ErrorIs(t, err, policy.ErrReservedRole)

		// served from cache the second time
		assert.ErrorIs(t, svc.DeleteRole(admin, id), policy.ErrReservedRole)
	}
}

func TestRoleService_RenameToReservedTitle(t *testing.T) {
	svc, repo := newTestRoleService(t)
	repo.EXPECT().FindRoleByID(gomock.Any(), int64(3)).Return(models.Role{ID: 3, Title: "editor"}, nil)

	_, err := svc.UpdateRole(ctxWithCaller(1, models.RoleAdminID), models.Role{ID: 3, Title: models.RoleAdminTitle})
	assert.ErrorIs(t, err, policy.ErrReservedRole)
}

func TestRoleService_RequiresAdmin(t *testing.T) {
	svc, _ := newTestRoleService(t)
	ctx := ctxWithCaller(4, models.RoleRegularID)

	_, err := svc.ListRoles(ctx)
	assert.ErrorIs(t, err, policy.ErrAdminRequired)
	_, err = svc.CreateRole(ctx, models.Role{Title: "editor"})
	assert.ErrorIs(t, err, policy.ErrAdminRequired)
	_, err = svc.GetRole(ctx, 3)
	assert.ErrorIs(t, err, policy.ErrAdminRequired)
}

func TestRoleService_CacheLifecycle(t *testing.T) {
	svc, repo := newTestRoleService(t)
	ctx := ctxWithCaller(1, models.RoleAdminID)

	repo.EXPECT().CreateRole(gomock.Any(), models.Role{Title: "editor"}).Return(models.Role{ID: 3, Title: "editor"}, nil)
	repo.EXPECT().UpdateRole(gomock.Any(), models.Role{ID: 3, Title: "writer"}).Return(models.Role{ID: 3, Title: "writer"}, nil)
	repo.EXPECT().DeleteRole(gomock.Any(), int64(3)).Return(nil)
	repo.EXPECT().FindRoleByID(gomock.Any(), int64(3)).Return(models.Role{}, store.ErrRoleNotFound)

	created, err := svc.CreateRole(ctx, models.Role{Title: "editor"})
	require.NoError(t, err)

	// cached by create, no repository read
	got, err := svc.GetRole(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "editor", got.Title)

	updated, err := svc.UpdateRole(ctx, models.Role{ID: 3, Title: "writer"})
	require.NoError(t, err)
	assert.Equal(t, "writer", updated.Title)

	got, err = svc.GetRole(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "writer", got.Title)

	require.NoError(t, svc.DeleteRole(ctx, 3))

	_, err = svc.GetRole(ctx, 3)
	assert.ErrorIs(t, err, store.ErrRoleNotFound)
}

func TestRoleService_DeleteRoleInUse(t *testing.T) {
	svc, repo := newTestRoleService(t)
	ctx := ctxWithCaller(1, models.RoleAdminID)

	repo.EXPECT().FindRoleByID(gomock.Any(), int64(3)).Return(models.Role{ID: 3, Title: "editor"}, nil)
	repo.EXPECT().DeleteRole(gomock.Any(), int64(3)).Return(store.ErrRoleInUse)

	assert.ErrorIs(t, svc.DeleteRole(ctx, 3), store.ErrRoleInUse)
}

func TestRoleService_CreateRole_EmptyTitle(t *testing.T) {
	svc, _ := newTestRoleService(t)
	_, err := svc.CreateRole(ctxWithCaller(1, models.RoleAdminID), models.Role{Title: "  "})
	assert.Error(t, err)
}
