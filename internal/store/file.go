package store

import (
	"context"
	"fmt"
	"time"

	"vendorhub/internal/utils"
	"vendorhub/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fileTableName = "vendorhub.files"

var fileColumns = utils.StructTagValues(types.File{})

type FileRepository struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) *FileRepository {
	return &FileRepository{pool: pool}
}

func (r *FileRepository) FileByID(ctx context.Context, fileID string) (*types.File, error) {

	query, args, err := psql().Select(fileColumns...).From(fileTableName).
		Where(sq.Eq{"id": fileID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate file query: %w", err)
	}

	var file = new(types.File)
	err = pgxscan.Get(ctx, r.pool, file, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrFileNotFound
	}

	return file, nil
}

func (r *FileRepository) CreateFile(ctx context.Context, file *types.File) error {

	if file.ID == "" {
		file.ID = utils.NanoID()
	}
	file.CreatedAt = time.Now()

	query, args, err := psql().Insert(fileTableName).SetMap(utils.StructToMap(file)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert file query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create file")
}
