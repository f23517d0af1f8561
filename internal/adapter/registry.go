package adapter

import (
	"fmt"
	"sort"

	"FubolSync/internal/config"
	"FubolSync/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// Factory 数据源适配器工厂函数签名
type Factory func(cfg *config.ScraperConfig, logger *logrus.Logger) (interfaces.SourceAdapter, error)

// ========== 全局工厂函数注册表 ==========
var factoryRegistry = make(map[string]Factory)

// Register 供适配器 init 函数调用，注册工厂函数
func Register(source string, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("数据源%s的工厂函数不能为nil", source))
	}
	if _, exists := factoryRegistry[source]; exists {
		logrus.Warnf("数据源%s的适配器已注册，将覆盖原有实现", source)
	}
	factoryRegistry[source] = factory
}

// GetFactory 获取指定数据源的工厂函数
func GetFactory(source string) (Factory, bool) {
	factory, ok := factoryRegistry[source]
	return factory, ok
}

// ListFactories 列出所有已注册的数据源（按名称排序）
func ListFactories() []string {
	sources := make([]string, 0, len(factoryRegistry))
	for s := range factoryRegistry {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}

// New 按配置中的数据源名称创建适配器实例
func New(cfg *config.ScraperConfig, logger *logrus.Logger) (interfaces.SourceAdapter, error) {
	factory, ok := GetFactory(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("未注册的数据源: %s（已注册：%v）", cfg.Source, ListFactories())
	}
	adapterIns, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("初始化数据源%s失败: %w", cfg.Source, err)
	}
	logger.WithField("source", adapterIns.GetName()).Info("数据源适配器初始化成功")
	return adapterIns, nil
}
