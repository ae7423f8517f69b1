package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/item/application/services"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
	"github.com/ghuser/stockroom/services/item/domain/repositories/mocks"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*services.ItemService, *mocks.MockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockItemRepository(ctrl)
	return services.NewItemService(repo, clock.Fixed(now), logger.Discard()), repo
}

func validParams() models.CreateParams {
	return models.CreateParams{
		Name:           "Wooden Chess Pieces",
		Category:       "pieces",
		Weight:         4.3,
		Color:          "tan/beige",
		InventoryLevel: 50,
		ReorderLevel:   20,
	}
}

func TestItemService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     func() models.CreateParams
		setupMock  func(m *mocks.MockItemRepository)
		wantFields []string
		wantErr    error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams,
			setupMock: func(m *mocks.MockItemRepository) {
				m.EXPECT().NameTaken(gomock.Any(), models.ItemName("Wooden Chess Pieces")).Return(false, nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it *models.Item) error {
					assert.True(t, it.Active)
					assert.Equal(t, now, it.CreatedAt)
					return nil
				})
			},
		},
		{
			name:   "NameTakenCaseInsensitive",
			params: validParams,
			setupMock: func(m *mocks.MockItemRepository) {
				m.EXPECT().NameTaken(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantFields: []string{"name"},
			wantErr:    itemdomain.ErrItemAlreadyExists,
		},
		{
			name: "AllFieldsReported",
			params: func() models.CreateParams {
				p := validParams()
				p.Category = "tables"
				p.Weight = 0
				p.ReorderLevel = -1
				return p
			},
			setupMock: func(m *mocks.MockItemRepository) {
				m.EXPECT().NameTaken(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantFields: []string{"category", "name", "reorder_level", "weight"},
			wantErr:    itemdomain.ErrInvalidItem,
		},
		{
			name: "InvalidNameSkipsUniquenessCheck",
			params: func() models.CreateParams {
				p := validParams()
				p.Name = ""
				return p
			},
			wantFields: []string{"name"},
			wantErr:    itemdomain.ErrInvalidItem,
		},
		{
			name:   "SaveRaceBecomesValidationError",
			params: validParams,
			setupMock: func(m *mocks.MockItemRepository) {
				m.EXPECT().NameTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(itemdomain.ErrItemAlreadyExists)
			},
			wantFields: []string{"name"},
			wantErr:    itemdomain.ErrItemAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Create(context.Background(), tt.params())
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, models.CategoryPieces, got.Category)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerr.ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			ve, ok := domainerr.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantFields, ve.FieldNames())
		})
	}
}

func TestItemService_Create_RepoError(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().NameTaken(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), validParams())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerr.ErrValidation)
}

func TestItemService_GetByID_NotFound(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, itemdomain.ErrItemNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, itemdomain.ErrItemNotFound)
}

func TestItemService_SetActive(t *testing.T) {
	svc, repo := newService(t)
	item := models.NewItem("Club Clock", models.CategoryClocks, validParams(), now.Add(-time.Hour))

	repo.EXPECT().Modify(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(*models.Item) bool) (*models.Item, error) {
			assert.True(t, fn(item), "expected change to be reported")
			return item, nil
		})

	got, err := svc.SetActive(context.Background(), item.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestItemService_SetActive_NoChange(t *testing.T) {
	svc, repo := newService(t)
	item := models.NewItem("Club Clock", models.CategoryClocks, validParams(), now)

	repo.EXPECT().Modify(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(*models.Item) bool) (*models.Item, error) {
			assert.False(t, fn(item))
			return item, nil
		})

	got, err := svc.SetActive(context.Background(), item.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestItemService_ListNeedingReorder_Paginates(t *testing.T) {
	svc, repo := newService(t)

	page := func(n int) []*models.Item {
		out := make([]*models.Item, n)
		for i := range out {
			out[i] = &models.Item{ID: uuid.New()}
		}
		return out
	}

	gomock.InOrder(
		repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.Filter) ([]*models.Item, int, error) {
				require.NotNil(t, f.Active)
				assert.True(t, *f.Active)
				assert.True(t, f.NeedsReorder)
				assert.Equal(t, 0, f.Offset)
				return page(100), 130, nil
			}),
		repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.Filter) ([]*models.Item, int, error) {
				assert.Equal(t, 100, f.Offset)
				return page(30), 130, nil
			}),
	)

	items, err := svc.ListNeedingReorder(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 130)
}
