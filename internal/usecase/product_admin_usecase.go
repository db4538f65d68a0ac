package usecase

import (
	"context"
	"strings"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
)

// ProductAdminUseCase реализует управление товарами в админке:
// создание с изображениями, правки и архивирование.
type ProductAdminUseCase struct {
	productRepo ProductRepository
	imagesInfra ImagesInfra
	cacheRepo   CacheRepository
	tx          Transactor
	logger      logger.Logger
}

func NewProductAdminUC(
	productRepo ProductRepository,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	tx Transactor,
	logger logger.Logger,
) *ProductAdminUseCase {
	return &ProductAdminUseCase{
		productRepo: productRepo,
		imagesInfra: imagesInfra,
		cacheRepo:   cacheRepo,
		tx:          tx,
		logger:      logger,
	}
}

// AddProduct создаёт товар и загружает его изображения в S3.
// При ошибке транзакция откатывается, а уже загруженные изображения
// зачищаются фоновой компенсацией.
func (p *ProductAdminUseCase) AddProduct(ctx context.Context, req *SaveProductReq) (int64, error) {
	const op = "ProductAdminUseCase.AddProduct"

	if err := p.validateProduct(req); err != nil {
		return 0, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
		productID int64
	)

	err := p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		product, err := p.productRepo.Create(txCtx, domain.NewProduct(
			req.Name, req.Slug, req.Description,
			req.BrandID, req.CategoryID,
			req.Price, req.Currency,
			req.Sizes, req.Colors, req.Season,
		))
		if err != nil {
			return err
		}
		productID = product.ID

		if len(req.Images) == 0 {
			return nil
		}

		imagesRes, err = p.imagesInfra.UploadImages(txCtx, NewUploadImagesReq(req.Slug, req.Images))
		if err != nil {
			return err
		}
		uploaded = true

		return p.productRepo.SetImageKeys(txCtx, productID, imagesRes.ImagesKeys)
	})
	if err != nil {
		if uploaded && imagesRes != nil {
			p.logger.Warnf("cleaning up orphaned images after failed product create, slug: %s, error: %v",
				req.Slug, e.Wrap(op, err))
			p.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
		}
		return 0, e.Wrap(op, err)
	}

	return productID, nil
}

// UpdateProduct обновляет поля товара; новые изображения добавляются к уже
// существующим. После записи карточка выбивается из кэша.
func (p *ProductAdminUseCase) UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) error {
	const op = "ProductAdminUseCase.UpdateProduct"

	if err := p.validateProduct(req); err != nil {
		return e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	err := p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		product := domain.NewProduct(
			req.Name, req.Slug, req.Description,
			req.BrandID, req.CategoryID,
			req.Price, req.Currency,
			req.Sizes, req.Colors, req.Season,
		)
		product.ID = id

		if err := p.productRepo.Update(txCtx, product); err != nil {
			return err
		}

		if len(req.Images) == 0 {
			return nil
		}

		var err error
		imagesRes, err = p.imagesInfra.UploadImages(txCtx, NewUploadImagesReq(req.Slug, req.Images))
		if err != nil {
			return err
		}
		uploaded = true

		return p.productRepo.SetImageKeys(txCtx, id, imagesRes.ImagesKeys)
	})
	if err != nil {
		if uploaded && imagesRes != nil {
			p.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
		}
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)
	return nil
}

// ArchiveProduct скрывает товар с витрины, не удаляя его:
// исторические заказы продолжают ссылаться на запись.
func (p *ProductAdminUseCase) ArchiveProduct(ctx context.Context, id int64) error {
	const op = "ProductAdminUseCase.ArchiveProduct"

	if err := p.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)
	return nil
}

func (p *ProductAdminUseCase) invalidateCache(ctx context.Context, id int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("failed to invalidate product cache, id: %d, error: %v", id, err)
	}
}

// validateProduct проверяет корректность входных данных товара.
func (p *ProductAdminUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Slug) == "" {
		return e.ErrProductNameRequired
	}

	if !req.Price.IsPositive() {
		return e.ErrPriceMustBePositive
	}

	if !req.Currency.IsValid() {
		return e.ErrUnknownCurrency
	}

	if req.Season != "" && !req.Season.IsValid() {
		return e.ErrMissingFields
	}

	return nil
}
