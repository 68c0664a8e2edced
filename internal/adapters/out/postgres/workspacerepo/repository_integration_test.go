package workspacerepo_test

import (
	"context"
	"testing"

	"photoflow/internal/adapters/out/postgres/pgtest"
	"photoflow/internal/adapters/out/postgres/workspacerepo"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGormWorkspaceRepository_Get(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	pg, err := pgtest.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	id, err := pg.InsertWorkspace("Harbour Realty", "4 Quay Street")
	require.NoError(t, err)
	repo := workspacerepo.NewGormWorkspaceRepository(pg.DB)

	ws, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Harbour Realty", ws.Name())
	require.Equal(t, "4 Quay Street", ws.Address().Address())

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
