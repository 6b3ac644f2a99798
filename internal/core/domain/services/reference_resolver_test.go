package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetdispatch/internal/adapters/out/memory"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var packageData = parcel.Data{QRCode: "QR1", Size: 1, Weight: 2, Location: "A", Status: "PENDING"}

func mustID(t *testing.T, raw string) kernel.ID {
	t.Helper()
	id, err := kernel.ParseID(raw)
	require.NoError(t, err)
	return id
}

type failingPackages struct{ err error }

func (f failingPackages) Add(context.Context, *parcel.Package) error { return f.err }
func (f failingPackages) Get(context.Context, kernel.ID) (*parcel.Package, error) {
	return nil, f.err
}

func TestReferenceResolver_ResolvePackage(t *testing.T) {
	ctx := t.Context()
	resolver := services.NewReferenceResolverWithIDs(func() kernel.ID { return mustID(t, "GEN-1") })

	t.Run("inline creates under a generated id", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().PackageRepository()

		pkg, err := resolver.ResolvePackage(ctx, repo, kernel.Inline(packageData))

		require.NoError(t, err)
		assert.Equal(t, "GEN-1", pkg.ID().String())
		stored, err := repo.Get(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, "QR1", stored.QRCode())
	})

	t.Run("by id returns the stored package", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().PackageRepository()
		existing, _ := parcel.NewPackage(mustID(t, "P1"), packageData)
		require.NoError(t, repo.Add(ctx, existing))

		pkg, err := resolver.ResolvePackage(ctx, repo, kernel.ByID[parcel.Data](mustID(t, "P1")))

		require.NoError(t, err)
		assert.Equal(t, "P1", pkg.ID().String())
	})

	t.Run("by id fails for an unknown package", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().PackageRepository()

		_, err := resolver.ResolvePackage(ctx, repo, kernel.ByID[parcel.Data](mustID(t, "P404")))

		var nf *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, parcel.Kind, nf.ParamName)
		assert.Equal(t, "P404", nf.ID)
	})

	t.Run("by id or create ignores data for an existing package", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().PackageRepository()
		existing, _ := parcel.NewPackage(mustID(t, "P1"), packageData)
		require.NoError(t, repo.Add(ctx, existing))

		other := packageData
		other.QRCode = "QR-other"
		pkg, err := resolver.ResolvePackage(ctx, repo, kernel.ByIDOrCreate(mustID(t, "P1"), other))

		require.NoError(t, err)
		assert.Equal(t, "QR1", pkg.QRCode())
	})

	t.Run("by id or create creates under the supplied id", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().PackageRepository()

		pkg, err := resolver.ResolvePackage(ctx, repo, kernel.ByIDOrCreate(mustID(t, "P7"), packageData))

		require.NoError(t, err)
		assert.Equal(t, "P7", pkg.ID().String())
		_, err = repo.Get(ctx, mustID(t, "P7"))
		require.NoError(t, err)
	})

	t.Run("missing reference is rejected", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().PackageRepository()

		_, err := resolver.ResolvePackage(ctx, repo, kernel.Reference[parcel.Data]{})

		var mr *errs.MissingReferenceError
		require.ErrorAs(t, err, &mr)
		assert.Equal(t, parcel.Kind, mr.Kind)
	})

	t.Run("store failures are not treated as absence", func(t *testing.T) {
		storeErr := errs.NewStoreError("get package", errors.New("connection refused"))

		_, err := resolver.ResolvePackage(ctx, failingPackages{err: storeErr}, kernel.ByIDOrCreate(mustID(t, "P1"), packageData))

		require.ErrorIs(t, err, errs.ErrStore)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestReferenceResolver_ResolveRobot(t *testing.T) {
	ctx := t.Context()
	resolver := services.NewReferenceResolver()
	data := robot.Data{Name: "Bot1", Status: "IDLE", Battery: 0, Location: "Dock", LastMaintained: time.Now()}

	t.Run("inline creates with a fresh id", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().RobotRepository()

		bot, err := resolver.ResolveRobot(ctx, repo, kernel.Inline(data))

		require.NoError(t, err)
		assert.False(t, bot.ID().IsZero())
		assert.Zero(t, bot.Battery())
	})

	t.Run("by id fails for an unknown robot", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().RobotRepository()

		_, err := resolver.ResolveRobot(ctx, repo, kernel.ByID[robot.Data](mustID(t, "R404")))

		var nf *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, robot.Kind, nf.ParamName)
	})

	t.Run("zero-value resolver still generates ids", func(t *testing.T) {
		repo := memory.NewStore(nil).Create().RobotRepository()

		bot, err := services.ReferenceResolver{}.ResolveRobot(ctx, repo, kernel.Inline(data))

		require.NoError(t, err)
		assert.False(t, bot.ID().IsZero())
	})
}
