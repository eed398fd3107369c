package entities

// Equipment is an item a player can carry and use
type Equipment int

const (
	SmallBomb Equipment = iota
	LargeBomb
	Dynamite
	AtomicBomb
	SmallRadio
	LargeRadio
	Grenade
	Mine
	Flamethrower
	Napalm
	Barrel
	SmallCrucifix
	LargeCrucifix
	Plastic
	ExplosivePlastic
	Digger
	MetalWall
	SmallPickaxe
	LargePickaxe
	Drill
	Teleport
	Clone
	Biomass
	Extinguisher
	Armor
	JumpingBomb
	SuperDrill

	// EquipmentCount is the number of equipment kinds
	EquipmentCount = int(iota)
)

var equipmentNames = [EquipmentCount]string{
	"Small Bomb", "Large Bomb", "Dynamite", "Atomic Bomb", "Small Radio", "Large Radio",
	"Grenade", "Mine", "Flamethrower", "Napalm", "Barrel", "Small Crucifix", "Large Crucifix",
	"Plastic", "Explosive Plastic", "Digger", "Metal Wall", "Small Pickaxe", "Large Pickaxe",
	"Drill", "Teleport", "Clone", "Biomass", "Extinguisher", "Armor", "Jumping Bomb", "Super Drill",
}

// String returns the display name of the item
func (e Equipment) String() string {
	if e < 0 || int(e) >= EquipmentCount {
		return "Unknown"
	}
	return equipmentNames[e]
}

// IsSelectable reports whether the item can be chosen for use. Digging tools
// and armor work passively.
func (e Equipment) IsSelectable() bool {
	switch e {
	case SmallPickaxe, LargePickaxe, Drill, Armor:
		return false
	}
	return true
}

// Inventory counts how many of each item a player carries
type Inventory [EquipmentCount]int

// Has returns true if at least one of the item is carried
func (inv *Inventory) Has(e Equipment) bool {
	return inv[e] > 0
}

// Add puts n items into the inventory
func (inv *Inventory) Add(e Equipment, n int) {
	inv[e] += n
}

// Take removes one item, returning false if there was none
func (inv *Inventory) Take(e Equipment) bool {
	if inv[e] == 0 {
		return false
	}
	inv[e]--
	return true
}
