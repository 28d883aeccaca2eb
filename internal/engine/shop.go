package engine

import "github.com/google/uuid"

// shopCatalog is the static shop stock. Prices are in coins.
var shopCatalog = []ShopItem{
	{
		ID:          "hat-1",
		Name:        "Wizard Hat",
		Price:       50,
		Type:        ItemCosmetic,
		Description: "A pointy hat that makes your gnome look smarter",
	},
	{
		ID:          "hat-2",
		Name:        "Crown",
		Price:       100,
		Type:        ItemCosmetic,
		Description: "Fit for a gnome king",
	},
	{
		ID:          "beard-1",
		Name:        "Epic Beard",
		Price:       75,
		Type:        ItemCosmetic,
		Description: "A magnificent beard that commands respect",
	},
	{
		ID:          "powerup-skip",
		Name:        "Skip Day Pass",
		Price:       25,
		Type:        ItemPowerup,
		Effect:      "skip_day",
		Description: "Skip a day without losing your streak",
	},
	{
		ID:          "powerup-xp-boost",
		Name:        "XP Boost",
		Price:       30,
		Type:        ItemPowerup,
		Effect:      "xp_boost",
		Description: "Double XP for your next check-in",
	},
	{
		ID:          "powerup-coin-bonus",
		Name:        "Coin Bonus",
		Price:       20,
		Type:        ItemPowerup,
		Effect:      "coin_bonus",
		Description: "Get extra coins on your next quest",
	},
}

// Catalog returns the full shop stock.
func Catalog() []ShopItem {
	out := make([]ShopItem, len(shopCatalog))
	copy(out, shopCatalog)
	return out
}

// CatalogItem looks up a shop item by id.
func CatalogItem(id string) *ShopItem {
	for i := range shopCatalog {
		if shopCatalog[i].ID == id {
			item := shopCatalog[i]
			return &item
		}
	}
	return nil
}

// CatalogByType filters the stock by item type.
func CatalogByType(t ItemType) []ShopItem {
	var out []ShopItem
	for _, item := range shopCatalog {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// Add credits one purchase of a shop item, stacking quantity when the item
// is already owned.
func (inv *Inventory) Add(item ShopItem, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range inv.Items {
		if inv.Items[i].ItemID == item.ID {
			inv.Items[i].Quantity += quantity
			return
		}
	}
	inv.Items = append(inv.Items, InventoryItem{
		ID:       uuid.NewString(),
		ItemID:   item.ID,
		Name:     item.Name,
		Type:     item.Type,
		Quantity: quantity,
	})
}

// Find returns the owned item with the given inventory or catalog id.
func (inv *Inventory) Find(id string) *InventoryItem {
	for i := range inv.Items {
		if inv.Items[i].ID == id || inv.Items[i].ItemID == id {
			return &inv.Items[i]
		}
	}
	return nil
}

// Equip marks an owned item equipped, unequipping any other item of the
// same type. Unknown ids are a no-op.
func (inv *Inventory) Equip(id string) {
	target := inv.Find(id)
	if target == nil {
		return
	}
	for i := range inv.Items {
		if inv.Items[i].Type == target.Type {
			inv.Items[i].Equipped = false
		}
	}
	target.Equipped = true
}

// Unequip clears the equipped flag on an owned item.
func (inv *Inventory) Unequip(id string) {
	if item := inv.Find(id); item != nil {
		item.Equipped = false
	}
}

// Equipped returns the currently equipped items.
func (inv *Inventory) Equipped() []InventoryItem {
	var out []InventoryItem
	for _, item := range inv.Items {
		if item.Equipped {
			out = append(out, item)
		}
	}
	return out
}

// ByType returns owned items of the given type.
func (inv *Inventory) ByType(t ItemType) []InventoryItem {
	var out []InventoryItem
	for _, item := range inv.Items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}
