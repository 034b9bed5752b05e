package service

import (
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// OrderService 订单业务服务,负责结算与订单查询。
type OrderService struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	counterRepo   repository.InvoiceCounterRepository
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	invoicePrefix string
	stats         StatsInvalidator
}

// NewOrderService 创建订单服务
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	counterRepo repository.InvoiceCounterRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	invoicePrefix string,
	stats StatsInvalidator,
) *OrderService {
	if invoicePrefix == "" {
		invoicePrefix = constants.DefaultInvoicePrefix
	}
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		counterRepo:   counterRepo,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		invoicePrefix: invoicePrefix,
		stats:         stats,
	}
}

// CheckoutInput 结算时提交的客户信息
type CheckoutInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Note            string
}

// OrderPage 订单分页结果
type OrderPage struct {
	Orders []models.Order
	Total  int64
}

// List 订单列表,创建时间倒序
func (s *OrderService) List(filter repository.OrderListFilter) (*OrderPage, error) {
	orders, total, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: orders, Total: total}, nil
}

// Get 按 ID 获取订单
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Checkout 结算:校验购物车非空,扣减库存,生成顺序单号,
// 落订单快照并清空购物车。全程单事务,任一环节失败整体回滚。
// 客户信息可缺省,匿名收银同样记账。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	var created *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetByKey(constants.DefaultCartKey)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		productRepo := s.productRepo.WithTx(tx)
		for _, item := range cart.Items {
			affected, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		}

		seq, err := s.nextInvoiceSeq(tx)
		if err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Image:     item.Image,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Vehicle:   item.Vehicle,
				Model:     item.Model,
				Category:  item.Category,
			})
		}
		order := &models.Order{
			InvoiceCode:     FormatInvoiceCode(s.invoicePrefix, seq),
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			CustomerAddress: input.CustomerAddress,
			Note:            input.Note,
			Status:          constants.OrderStatusCompleted,
			TotalAmount:     cart.TotalAmount,
			Items:           items,
		}
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}

		if err := cartRepo.ClearItems(cart.ID, models.NewMoneyFromInt(0)); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateStats(s.stats)
	return created, nil
}

// nextInvoiceSeq 取下一个单号序号。计数器行不存在时,
// 先按存量订单的最大单号播种再自增,保证序号严格递增不重复。
func (s *OrderService) nextInvoiceSeq(tx *gorm.DB) (int64, error) {
	counterRepo := s.counterRepo.WithTx(tx)
	counter, err := counterRepo.Get(s.invoicePrefix)
	if err != nil {
		return 0, err
	}
	if counter == nil {
		lastCode, err := s.orderRepo.WithTx(tx).LastInvoiceCode(s.invoicePrefix)
		if err != nil {
			return 0, err
		}
		seed := ParseInvoiceSeq(lastCode, s.invoicePrefix)
		if err := counterRepo.Create(&models.InvoiceCounter{Prefix: s.invoicePrefix, Value: seed}); err != nil {
			return 0, err
		}
	}
	return counterRepo.Next(s.invoicePrefix)
}
