package protocol

import "github.com/oryxlabs/realmcore/pkg/wire"

// WorldPos is a floating-point world coordinate pair.
type WorldPos struct {
	X float32
	Y float32
}

func DecodeWorldPos(r *wire.Reader) WorldPos {
	return WorldPos{X: r.ReadF32(), Y: r.ReadF32()}
}

func EncodeWorldPos(w *wire.Writer, v WorldPos) {
	w.WriteF32(v.X)
	w.WriteF32(v.Y)
}

// GroundTile identifies one ground tile update.
type GroundTile struct {
	X    uint16
	Y    uint16
	Tile uint16
}

func DecodeGroundTile(r *wire.Reader) GroundTile {
	return GroundTile{X: r.ReadU16(), Y: r.ReadU16(), Tile: r.ReadU16()}
}

func EncodeGroundTile(w *wire.Writer, v GroundTile) {
	w.WriteU16(v.X)
	w.WriteU16(v.Y)
	w.WriteU16(v.Tile)
}

// MoveRecord is one sampled point of a client movement history.
type MoveRecord struct {
	Time uint32
	X    float32
	Y    float32
}

func DecodeMoveRecord(r *wire.Reader) MoveRecord {
	return MoveRecord{Time: r.ReadU32(), X: r.ReadF32(), Y: r.ReadF32()}
}

func EncodeMoveRecord(w *wire.Writer, v MoveRecord) {
	w.WriteU32(v.Time)
	w.WriteF32(v.X)
	w.WriteF32(v.Y)
}

// SlotObject references one inventory slot's occupant.
type SlotObject struct {
	ObjectID   uint32
	SlotID     uint8
	ObjectType uint32
}

func DecodeSlotObject(r *wire.Reader) SlotObject {
	return SlotObject{ObjectID: r.ReadU32(), SlotID: r.ReadU8(), ObjectType: r.ReadU32()}
}

func EncodeSlotObject(w *wire.Writer, v SlotObject) {
	w.WriteU32(v.ObjectID)
	w.WriteU8(v.SlotID)
	w.WriteU32(v.ObjectType)
}

// TradeItem is one entry in a trade offer.
type TradeItem struct {
	Item      uint32
	SlotType  uint32
	Tradeable bool
	Included  bool
}

func DecodeTradeItem(r *wire.Reader) TradeItem {
	return TradeItem{
		Item:      r.ReadU32(),
		SlotType:  r.ReadU32(),
		Tradeable: r.ReadBool(),
		Included:  r.ReadBool(),
	}
}

func EncodeTradeItem(w *wire.Writer, v TradeItem) {
	w.WriteU32(v.Item)
	w.WriteU32(v.SlotType)
	w.WriteBool(v.Tradeable)
	w.WriteBool(v.Included)
}

// ObjectStatus is one object's position and current stat snapshot.
type ObjectStatus struct {
	ObjectID uint32
	Pos      WorldPos
	Stats    []StatData
}

func DecodeObjectStatus(r *wire.Reader) ObjectStatus {
	id := r.ReadU32()
	pos := DecodeWorldPos(r)
	stats := wire.ReadVector(r, wire.Prefix16, DecodeStatData)
	return ObjectStatus{ObjectID: id, Pos: pos, Stats: stats}
}

func EncodeObjectStatus(w *wire.Writer, v ObjectStatus) {
	w.WriteU32(v.ObjectID)
	EncodeWorldPos(w, v.Pos)
	wire.WriteVector(w, wire.Prefix16, v.Stats, EncodeStatData)
}

// ObjectEntry is a full object record: its type plus its status.
type ObjectEntry struct {
	ObjectType uint16
	Status     ObjectStatus
}

func DecodeObjectEntry(r *wire.Reader) ObjectEntry {
	typ := r.ReadU16()
	status := DecodeObjectStatus(r)
	return ObjectEntry{ObjectType: typ, Status: status}
}

func EncodeObjectEntry(w *wire.Writer, v ObjectEntry) {
	w.WriteU16(v.ObjectType)
	EncodeObjectStatus(w, v.Status)
}

// Quest is a quest record as presented to the client.
type Quest struct {
	ID            string
	Name          string
	Description   string
	Category      uint32
	Requirements  []uint32
	Rewards       []uint32
	Completed     bool
	ItemOfChoice  bool
	Repeatable    bool
}

func DecodeQuest(r *wire.Reader) Quest {
	id := r.ReadString(wire.Prefix16)
	name := r.ReadString(wire.Prefix16)
	description := r.ReadString(wire.Prefix16)
	category := r.ReadU32()
	requirements := wire.ReadVector(r, wire.Prefix16, func(r *wire.Reader) uint32 { return r.ReadU32() })
	rewards := wire.ReadVector(r, wire.Prefix16, func(r *wire.Reader) uint32 { return r.ReadU32() })
	completed := r.ReadBool()
	itemOfChoice := r.ReadBool()
	repeatable := r.ReadBool()
	return Quest{
		ID: id, Name: name, Description: description, Category: category,
		Requirements: requirements, Rewards: rewards,
		Completed: completed, ItemOfChoice: itemOfChoice, Repeatable: repeatable,
	}
}

func EncodeQuest(w *wire.Writer, v Quest) {
	w.WriteString(wire.Prefix16, v.ID)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteString(wire.Prefix16, v.Description)
	w.WriteU32(v.Category)
	wire.WriteVector(w, wire.Prefix16, v.Requirements, func(w *wire.Writer, x uint32) { w.WriteU32(x) })
	wire.WriteVector(w, wire.Prefix16, v.Rewards, func(w *wire.Writer, x uint32) { w.WriteU32(x) })
	w.WriteBool(v.Completed)
	w.WriteBool(v.ItemOfChoice)
	w.WriteBool(v.Repeatable)
}
