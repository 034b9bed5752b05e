package service

import (
	"github.com/shopspring/decimal"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// CartService 购物车业务服务,操作系统唯一的 default 购物车。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetOrCreate 获取购物车,不存在时自动建一辆空车
func (s *CartService) GetOrCreate() (*models.Cart, error) {
	cart, err := s.cartRepo.GetByKey(constants.DefaultCartKey)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{
		CartKey:     constants.DefaultCartKey,
		TotalAmount: models.NewMoneyFromInt(0),
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem 加入商品,已在车内时累加数量,新商品快照当前售卖信息
func (s *CartService) AddItem(productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	cart, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}

	items := cart.Items
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			Quantity:  quantity,
			Vehicle:   product.Vehicle,
			Model:     product.Model,
			Category:  product.Category,
		})
	}
	return s.persist(cart, items)
}

// UpdateItem 设置条目数量,数量 <= 0 时移除该条目
func (s *CartService) UpdateItem(productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByKey(constants.DefaultCartKey)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrNotFound
	}

	items := cart.Items
	index := -1
	for i := range items {
		if items[i].ProductID == productID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrCartItemNotFound
	}

	if quantity <= 0 {
		items = append(items[:index], items[index+1:]...)
	} else {
		items[index].Quantity = quantity
	}
	return s.persist(cart, items)
}

// RemoveItem 移除条目,条目不存在时视为已移除
func (s *CartService) RemoveItem(productID uint) (*models.Cart, error) {
	cart, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}

	items := cart.Items
	index := -1
	for i := range items {
		if items[i].ProductID == productID {
			index = i
			break
		}
	}
	if index < 0 {
		return cart, nil
	}

	items = append(items[:index], items[index+1:]...)
	return s.persist(cart, items)
}

// persist 重算合计并整体落库,合计始终等于条目价格×数量之和
func (s *CartService) persist(cart *models.Cart, items []models.CartItem) (*models.Cart, error) {
	cart.TotalAmount = cartTotal(items)
	cart.Items = items
	if err := s.cartRepo.ReplaceItems(cart, items); err != nil {
		return nil, err
	}
	return cart, nil
}

// cartTotal 按当前条目求合计金额
func cartTotal(items []models.CartItem) models.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}
