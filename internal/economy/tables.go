package economy

import "github.com/osse101/Kombinat_Go/internal/domain"

// Static reference tables. Immutable after startup and not part of player
// state; callers look entries up by id and never mutate them.

// InventoryItems is the purchasable gear catalog
var InventoryItems = []domain.InventoryItem{
	{ID: "gloves", Name: "Рабочие перчатки", Description: "+2% к зарплате", Bonus: 0.02, Cost: 250, Icon: "🧤"},
	{ID: "helmet", Name: "Новая каска", Description: "+3% к зарплате", Bonus: 0.03, Cost: 500, Icon: "👷"},
	{ID: "boots", Name: "Прочные ботинки", Description: "+5% к зарплате", Bonus: 0.05, Cost: 1200, Icon: "🥾"},
	{ID: "tools", Name: "Улучшенный инструмент", Description: "+7% к зарплате", Bonus: 0.07, Cost: 3000, Icon: "🛠️"},
	{ID: "thermos", Name: "Современный термос", Description: "+10% к зарплате", Bonus: 0.10, Cost: 7500, Icon: "☕"},
	{ID: "transport", Name: "Личный транспорт", Description: "+15% к зарплате", Bonus: 0.15, Cost: 20000, Icon: "🚗"},
}

// Partnerships is the passive-income asset catalog
var Partnerships = []domain.Partnership{
	{ID: "scrap", Name: "Пункт металлолома", Description: "Ежедневный доход", Cost: 10000, DailyIncome: 200, Icon: "⚙️"},
	{ID: "taxi", Name: "Таксопарк", Description: "Ежедневный доход", Cost: 50000, DailyIncome: 1100, Icon: "🚕"},
	{ID: "shipping", Name: "Грузоперевозки", Description: "Ежедневный доход", Cost: 200000, DailyIncome: 4500, Icon: "🚚"},
	{ID: "market", Name: "Маркет спецодежды", Description: "Ежедневный доход", Cost: 800000, DailyIncome: 18000, Icon: "👕"},
}

// Productions is the affiliation catalog
var Productions = []domain.Production{
	{ID: "sinter", Name: "Аглодоменное", Description: "Основа комбината, производство агломерата и чугуна.", Icon: "🏭"},
	{ID: "steel", Name: "Сталеплавильное", Description: "Сердце комбината, здесь чугун превращается в сталь.", Icon: "🔥"},
	{ID: "coke", Name: "Коксохимическое", Description: "Обеспечивает комбинат топливом - коксом.", Icon: "💨"},
}

// InventoryItemByID looks up a catalog item, nil when unknown
func InventoryItemByID(id string) *domain.InventoryItem {
	for i := range InventoryItems {
		if InventoryItems[i].ID == id {
			return &InventoryItems[i]
		}
	}
	return nil
}

// PartnershipByID looks up a partnership, nil when unknown
func PartnershipByID(id string) *domain.Partnership {
	for i := range Partnerships {
		if Partnerships[i].ID == id {
			return &Partnerships[i]
		}
	}
	return nil
}

// ProductionByID looks up a production, nil when unknown
func ProductionByID(id string) *domain.Production {
	for i := range Productions {
		if Productions[i].ID == id {
			return &Productions[i]
		}
	}
	return nil
}
