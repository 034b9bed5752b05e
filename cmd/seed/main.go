package main

import (
	"github.com/shopspring/decimal"

	"github.com/motorparts-api/internal/config"
	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/logger"
	"github.com/motorparts-api/internal/models"
)

// 演示数据,便于本地联调前端页面。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库连接失败: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	vehicles := []models.Vehicle{
		{Name: "Honda Wave", Description: "Wave 系列通用配件"},
		{Name: "Yamaha Exciter", Description: "Exciter 系列通用配件"},
		{Name: "Honda Vision", Description: "Vision 系列通用配件"},
	}
	for i := range vehicles {
		if err := seedVehicle(&vehicles[i]); err != nil {
			stdLog.Fatalf("写入车系失败: %v", err)
		}
	}

	vehicleModels := []models.VehicleModel{
		{Name: "Wave Alpha 110", Vehicle: "Honda Wave"},
		{Name: "Wave RSX", Vehicle: "Honda Wave"},
		{Name: "Exciter 150", Vehicle: "Yamaha Exciter"},
		{Name: "Exciter 155 VVA", Vehicle: "Yamaha Exciter"},
		{Name: "Vision 2021", Vehicle: "Honda Vision"},
	}
	for i := range vehicleModels {
		if err := seedModel(&vehicleModels[i]); err != nil {
			stdLog.Fatalf("写入车型失败: %v", err)
		}
	}

	categories := []models.Category{
		{Name: "发动机件", Vehicle: "Honda Wave"},
		{Name: "制动系统", Vehicle: "Honda Wave"},
		{Name: "发动机件", Vehicle: "Yamaha Exciter"},
		{Name: "外观件", Vehicle: "Yamaha Exciter"},
		{Name: "电气件", Vehicle: "Honda Vision"},
	}
	for i := range categories {
		if err := seedCategory(&categories[i]); err != nil {
			stdLog.Fatalf("写入分类失败: %v", err)
		}
	}

	products := []models.Product{
		{
			Name:     "活塞环套装",
			Vehicle:  "Honda Wave",
			Model:    "Wave Alpha 110",
			Category: "发动机件",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(185000)),
			Quantity: 40,
			Origin:   "Vietnam",
			Status:   constants.ProductStatusInStock,
		},
		{
			Name:     "前刹车片",
			Vehicle:  "Honda Wave",
			Model:    "Wave RSX",
			Category: "制动系统",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(95000)),
			Quantity: 120,
			Origin:   "Thailand",
			Status:   constants.ProductStatusInStock,
		},
		{
			Name:     "气缸总成",
			Vehicle:  "Yamaha Exciter",
			Model:    "Exciter 150",
			Category: "发动机件",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(1250000)),
			Quantity: 8,
			Origin:   "Indonesia",
			Status:   constants.ProductStatusInStock,
		},
		{
			Name:     "大灯总成",
			Vehicle:  "Yamaha Exciter",
			Model:    "Exciter 155 VVA",
			Category: "外观件",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(430000)),
			Quantity: 0,
			Origin:   "Vietnam",
			Status:   constants.ProductStatusInStock,
		},
		{
			Name:     "整流器",
			Vehicle:  "Honda Vision",
			Model:    "Vision 2021",
			Category: "电气件",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(210000)),
			Quantity: 25,
			Origin:   "Vietnam",
			Status:   constants.ProductStatusInStock,
		},
	}
	for i := range products {
		if err := seedProduct(&products[i]); err != nil {
			stdLog.Fatalf("写入商品失败: %v", err)
		}
	}

	stdLog.Printf("演示数据写入完成: %d 车系 / %d 车型 / %d 分类 / %d 商品",
		len(vehicles), len(vehicleModels), len(categories), len(products))
}

// 各 seed 函数按自然键幂等,重复执行不产生重复行。

func seedVehicle(v *models.Vehicle) error {
	var count int64
	if err := models.DB.Model(&models.Vehicle{}).Where("name = ?", v.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return models.DB.Create(v).Error
}

func seedModel(m *models.VehicleModel) error {
	var count int64
	err := models.DB.Model(&models.VehicleModel{}).
		Where("name = ? AND vehicle = ?", m.Name, m.Vehicle).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return models.DB.Create(m).Error
}

func seedCategory(c *models.Category) error {
	var count int64
	err := models.DB.Model(&models.Category{}).
		Where("name = ? AND vehicle = ?", c.Name, c.Vehicle).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return models.DB.Create(c).Error
}

func seedProduct(p *models.Product) error {
	var count int64
	err := models.DB.Model(&models.Product{}).
		Where("name = ? AND vehicle = ? AND model = ? AND category = ?",
			p.Name, p.Vehicle, p.Model, p.Category).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return models.DB.Create(p).Error
}
