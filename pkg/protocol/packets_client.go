package protocol

import "github.com/oryxlabs/realmcore/pkg/wire"

// Client-originated packets, in the order that fixes their internal tag
// assignment (see Kind in registry.go). Codecs read and write fields in
// declared struct order; keep the two in sync when editing.

type AcceptTrade struct {
	MyOffer   []bool
	YourOffer []bool
}

func decodeAcceptTrade(r *wire.Reader) any {
	return AcceptTrade{
		MyOffer:   wire.ReadVector(r, wire.Prefix16, readBool),
		YourOffer: wire.ReadVector(r, wire.Prefix16, readBool),
	}
}
func encodeAcceptTrade(w *wire.Writer, p any) {
	v := p.(AcceptTrade)
	wire.WriteVector(w, wire.Prefix16, v.MyOffer, writeBool)
	wire.WriteVector(w, wire.Prefix16, v.YourOffer, writeBool)
}

type ActivePetUpdateRequest struct {
	CommandType uint8
	InstanceID  uint32
}

func decodeActivePetUpdateRequest(r *wire.Reader) any {
	return ActivePetUpdateRequest{CommandType: r.ReadU8(), InstanceID: r.ReadU32()}
}
func encodeActivePetUpdateRequest(w *wire.Writer, p any) {
	v := p.(ActivePetUpdateRequest)
	w.WriteU8(v.CommandType)
	w.WriteU32(v.InstanceID)
}

type AoeAck struct {
	Time uint32
	Pos  WorldPos
}

func decodeAoeAck(r *wire.Reader) any {
	return AoeAck{Time: r.ReadU32(), Pos: DecodeWorldPos(r)}
}
func encodeAoeAck(w *wire.Writer, p any) {
	v := p.(AoeAck)
	w.WriteU32(v.Time)
	EncodeWorldPos(w, v.Pos)
}

type Buy struct {
	ObjectID uint32
	Quantity uint32
}

func decodeBuy(r *wire.Reader) any { return Buy{ObjectID: r.ReadU32(), Quantity: r.ReadU32()} }
func encodeBuy(w *wire.Writer, p any) {
	v := p.(Buy)
	w.WriteU32(v.ObjectID)
	w.WriteU32(v.Quantity)
}

type CancelTrade struct{}

func decodeCancelTrade(r *wire.Reader) any { return CancelTrade{} }
func encodeCancelTrade(w *wire.Writer, p any) {}

type ChangeGuildRank struct {
	Name      string
	GuildRank uint32
}

func decodeChangeGuildRank(r *wire.Reader) any {
	return ChangeGuildRank{Name: r.ReadString(wire.Prefix16), GuildRank: r.ReadU32()}
}
func encodeChangeGuildRank(w *wire.Writer, p any) {
	v := p.(ChangeGuildRank)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteU32(v.GuildRank)
}

type ChangeTrade struct {
	Offer []bool
}

func decodeChangeTrade(r *wire.Reader) any {
	return ChangeTrade{Offer: wire.ReadVector(r, wire.Prefix16, readBool)}
}
func encodeChangeTrade(w *wire.Writer, p any) {
	v := p.(ChangeTrade)
	wire.WriteVector(w, wire.Prefix16, v.Offer, writeBool)
}

type CheckCredits struct{}

func decodeCheckCredits(r *wire.Reader) any { return CheckCredits{} }
func encodeCheckCredits(w *wire.Writer, p any) {}

type ChooseName struct {
	Name string
}

func decodeChooseName(r *wire.Reader) any { return ChooseName{Name: r.ReadString(wire.Prefix16)} }
func encodeChooseName(w *wire.Writer, p any) {
	w.WriteString(wire.Prefix16, p.(ChooseName).Name)
}

type ClaimLoginRewardMsg struct {
	ClaimKey string
	Typ      string
}

func decodeClaimLoginRewardMsg(r *wire.Reader) any {
	return ClaimLoginRewardMsg{ClaimKey: r.ReadString(wire.Prefix16), Typ: r.ReadString(wire.Prefix16)}
}
func encodeClaimLoginRewardMsg(w *wire.Writer, p any) {
	v := p.(ClaimLoginRewardMsg)
	w.WriteString(wire.Prefix16, v.ClaimKey)
	w.WriteString(wire.Prefix16, v.Typ)
}

type Create struct {
	ClassType uint16
	SkinType  uint16
}

func decodeCreate(r *wire.Reader) any { return Create{ClassType: r.ReadU16(), SkinType: r.ReadU16()} }
func encodeCreate(w *wire.Writer, p any) {
	v := p.(Create)
	w.WriteU16(v.ClassType)
	w.WriteU16(v.SkinType)
}

type CreateGuild struct {
	Name string
}

func decodeCreateGuild(r *wire.Reader) any { return CreateGuild{Name: r.ReadString(wire.Prefix16)} }
func encodeCreateGuild(w *wire.Writer, p any) {
	w.WriteString(wire.Prefix16, p.(CreateGuild).Name)
}

type EditAccountList struct {
	AccountListID uint32
	Add           bool
	ObjectID      uint32
}

func decodeEditAccountList(r *wire.Reader) any {
	return EditAccountList{AccountListID: r.ReadU32(), Add: r.ReadBool(), ObjectID: r.ReadU32()}
}
func encodeEditAccountList(w *wire.Writer, p any) {
	v := p.(EditAccountList)
	w.WriteU32(v.AccountListID)
	w.WriteBool(v.Add)
	w.WriteU32(v.ObjectID)
}

type EnemyHit struct {
	Time     uint32
	BulletID uint8
	TargetID uint32
	Kill     bool
}

func decodeEnemyHit(r *wire.Reader) any {
	return EnemyHit{Time: r.ReadU32(), BulletID: r.ReadU8(), TargetID: r.ReadU32(), Kill: r.ReadBool()}
}
func encodeEnemyHit(w *wire.Writer, p any) {
	v := p.(EnemyHit)
	w.WriteU32(v.Time)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.TargetID)
	w.WriteBool(v.Kill)
}

type EnterArena struct {
	Currency uint32
}

func decodeEnterArena(r *wire.Reader) any { return EnterArena{Currency: r.ReadU32()} }
func encodeEnterArena(w *wire.Writer, p any) { w.WriteU32(p.(EnterArena).Currency) }

type Escape struct{}

func decodeEscape(r *wire.Reader) any { return Escape{} }
func encodeEscape(w *wire.Writer, p any) {}

type GotoAck struct {
	Time uint32
}

func decodeGotoAck(r *wire.Reader) any { return GotoAck{Time: r.ReadU32()} }
func encodeGotoAck(w *wire.Writer, p any) { w.WriteU32(p.(GotoAck).Time) }

type GroundDamage struct {
	Time uint32
	Pos  WorldPos
}

func decodeGroundDamage(r *wire.Reader) any {
	return GroundDamage{Time: r.ReadU32(), Pos: DecodeWorldPos(r)}
}
func encodeGroundDamage(w *wire.Writer, p any) {
	v := p.(GroundDamage)
	w.WriteU32(v.Time)
	EncodeWorldPos(w, v.Pos)
}

type GuildInvite struct {
	Name string
}

func decodeGuildInvite(r *wire.Reader) any { return GuildInvite{Name: r.ReadString(wire.Prefix16)} }
func encodeGuildInvite(w *wire.Writer, p any) { w.WriteString(wire.Prefix16, p.(GuildInvite).Name) }

type GuildRemove struct {
	Name string
}

func decodeGuildRemove(r *wire.Reader) any { return GuildRemove{Name: r.ReadString(wire.Prefix16)} }
func encodeGuildRemove(w *wire.Writer, p any) { w.WriteString(wire.Prefix16, p.(GuildRemove).Name) }

// Hello is the client's initial handshake packet, carrying the build
// identity and login credentials.
type Hello struct {
	BuildVersion   string
	GameID         uint32
	GUID           string
	Rand1          uint32
	Password       string
	Rand2          uint32
	Secret         string
	KeyTime        uint32
	Key            []byte
	MapJSON        string
	EntryTag       string
	GameNet        string
	GameNetUserID  string
	PlayPlatform   string
	PlatformToken  string
	UserToken      string
}

func decodeHello(r *wire.Reader) any {
	return Hello{
		BuildVersion:  r.ReadString(wire.Prefix16),
		GameID:        r.ReadU32(),
		GUID:          r.ReadString(wire.Prefix16),
		Rand1:         r.ReadU32(),
		Password:      r.ReadString(wire.Prefix16),
		Rand2:         r.ReadU32(),
		Secret:        r.ReadString(wire.Prefix16),
		KeyTime:       r.ReadU32(),
		Key:           r.ReadLenPrefixedBytes(wire.Prefix16),
		MapJSON:       r.ReadString(wire.Prefix32),
		EntryTag:      r.ReadString(wire.Prefix16),
		GameNet:       r.ReadString(wire.Prefix16),
		GameNetUserID: r.ReadString(wire.Prefix16),
		PlayPlatform:  r.ReadString(wire.Prefix16),
		PlatformToken: r.ReadString(wire.Prefix16),
		UserToken:     r.ReadString(wire.Prefix16),
	}
}
func encodeHello(w *wire.Writer, p any) {
	v := p.(Hello)
	w.WriteString(wire.Prefix16, v.BuildVersion)
	w.WriteU32(v.GameID)
	w.WriteString(wire.Prefix16, v.GUID)
	w.WriteU32(v.Rand1)
	w.WriteString(wire.Prefix16, v.Password)
	w.WriteU32(v.Rand2)
	w.WriteString(wire.Prefix16, v.Secret)
	w.WriteU32(v.KeyTime)
	w.WriteLenPrefixedBytes(wire.Prefix16, v.Key)
	w.WriteString(wire.Prefix32, v.MapJSON)
	w.WriteString(wire.Prefix16, v.EntryTag)
	w.WriteString(wire.Prefix16, v.GameNet)
	w.WriteString(wire.Prefix16, v.GameNetUserID)
	w.WriteString(wire.Prefix16, v.PlayPlatform)
	w.WriteString(wire.Prefix16, v.PlatformToken)
	w.WriteString(wire.Prefix16, v.UserToken)
}

type InvDrop struct {
	Slot SlotObject
}

func decodeInvDrop(r *wire.Reader) any { return InvDrop{Slot: DecodeSlotObject(r)} }
func encodeInvDrop(w *wire.Writer, p any) { EncodeSlotObject(w, p.(InvDrop).Slot) }

type InvSwap struct {
	Time  uint32
	Pos   WorldPos
	Slot1 SlotObject
	Slot2 SlotObject
}

func decodeInvSwap(r *wire.Reader) any {
	return InvSwap{
		Time: r.ReadU32(), Pos: DecodeWorldPos(r),
		Slot1: DecodeSlotObject(r), Slot2: DecodeSlotObject(r),
	}
}
func encodeInvSwap(w *wire.Writer, p any) {
	v := p.(InvSwap)
	w.WriteU32(v.Time)
	EncodeWorldPos(w, v.Pos)
	EncodeSlotObject(w, v.Slot1)
	EncodeSlotObject(w, v.Slot2)
}

type JoinGuild struct {
	GuildName string
}

func decodeJoinGuild(r *wire.Reader) any { return JoinGuild{GuildName: r.ReadString(wire.Prefix16)} }
func encodeJoinGuild(w *wire.Writer, p any) {
	w.WriteString(wire.Prefix16, p.(JoinGuild).GuildName)
}

type KeyInfoRequest struct {
	ItemType uint32
}

func decodeKeyInfoRequest(r *wire.Reader) any { return KeyInfoRequest{ItemType: r.ReadU32()} }
func encodeKeyInfoRequest(w *wire.Writer, p any) { w.WriteU32(p.(KeyInfoRequest).ItemType) }

type Load struct {
	CharID    uint32
	FromArena bool
}

func decodeLoad(r *wire.Reader) any { return Load{CharID: r.ReadU32(), FromArena: r.ReadBool()} }
func encodeLoad(w *wire.Writer, p any) {
	v := p.(Load)
	w.WriteU32(v.CharID)
	w.WriteBool(v.FromArena)
}

type Move struct {
	TickID  uint32
	Time    uint32
	NewPos  WorldPos
	Records []MoveRecord
}

func decodeMove(r *wire.Reader) any {
	return Move{
		TickID: r.ReadU32(), Time: r.ReadU32(), NewPos: DecodeWorldPos(r),
		Records: wire.ReadVector(r, wire.Prefix16, DecodeMoveRecord),
	}
}
func encodeMove(w *wire.Writer, p any) {
	v := p.(Move)
	w.WriteU32(v.TickID)
	w.WriteU32(v.Time)
	EncodeWorldPos(w, v.NewPos)
	wire.WriteVector(w, wire.Prefix16, v.Records, EncodeMoveRecord)
}

type OtherHit struct {
	Time     uint32
	BulletID uint8
	ObjectID uint32
	TargetID uint32
}

func decodeOtherHit(r *wire.Reader) any {
	return OtherHit{Time: r.ReadU32(), BulletID: r.ReadU8(), ObjectID: r.ReadU32(), TargetID: r.ReadU32()}
}
func encodeOtherHit(w *wire.Writer, p any) {
	v := p.(OtherHit)
	w.WriteU32(v.Time)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.ObjectID)
	w.WriteU32(v.TargetID)
}

type PetChangeFormMsg struct {
	InstanceID        uint32
	PickedNewPetType  uint32
	Item              SlotObject
}

func decodePetChangeFormMsg(r *wire.Reader) any {
	return PetChangeFormMsg{
		InstanceID: r.ReadU32(), PickedNewPetType: r.ReadU32(), Item: DecodeSlotObject(r),
	}
}
func encodePetChangeFormMsg(w *wire.Writer, p any) {
	v := p.(PetChangeFormMsg)
	w.WriteU32(v.InstanceID)
	w.WriteU32(v.PickedNewPetType)
	EncodeSlotObject(w, v.Item)
}

type PetChangeSkinMsg struct {
	PetID    uint32
	SkinType uint32
	Currency uint32
}

func decodePetChangeSkinMsg(r *wire.Reader) any {
	return PetChangeSkinMsg{PetID: r.ReadU32(), SkinType: r.ReadU32(), Currency: r.ReadU32()}
}
func encodePetChangeSkinMsg(w *wire.Writer, p any) {
	v := p.(PetChangeSkinMsg)
	w.WriteU32(v.PetID)
	w.WriteU32(v.SkinType)
	w.WriteU32(v.Currency)
}

type PetUpgradeRequest struct {
	PetTransType     uint8
	PidOne           uint32
	PidTwo           uint32
	ObjectID         uint32
	PaymentTransType uint8
	Slots            []SlotObject
}

func decodePetUpgradeRequest(r *wire.Reader) any {
	return PetUpgradeRequest{
		PetTransType: r.ReadU8(), PidOne: r.ReadU32(), PidTwo: r.ReadU32(),
		ObjectID: r.ReadU32(), PaymentTransType: r.ReadU8(),
		Slots: wire.ReadVector(r, wire.Prefix16, DecodeSlotObject),
	}
}
func encodePetUpgradeRequest(w *wire.Writer, p any) {
	v := p.(PetUpgradeRequest)
	w.WriteU8(v.PetTransType)
	w.WriteU32(v.PidOne)
	w.WriteU32(v.PidTwo)
	w.WriteU32(v.ObjectID)
	w.WriteU8(v.PaymentTransType)
	wire.WriteVector(w, wire.Prefix16, v.Slots, EncodeSlotObject)
}

type PlayerHit struct {
	BulletID uint8
	ObjectID uint32
}

func decodePlayerHit(r *wire.Reader) any { return PlayerHit{BulletID: r.ReadU8(), ObjectID: r.ReadU32()} }
func encodePlayerHit(w *wire.Writer, p any) {
	v := p.(PlayerHit)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.ObjectID)
}

type PlayerShoot struct {
	Time          uint32
	BulletID      uint8
	ContainerType uint16
	StartingPos   WorldPos
	Angle         float32
}

func decodePlayerShoot(r *wire.Reader) any {
	return PlayerShoot{
		Time: r.ReadU32(), BulletID: r.ReadU8(), ContainerType: r.ReadU16(),
		StartingPos: DecodeWorldPos(r), Angle: r.ReadF32(),
	}
}
func encodePlayerShoot(w *wire.Writer, p any) {
	v := p.(PlayerShoot)
	w.WriteU32(v.Time)
	w.WriteU8(v.BulletID)
	w.WriteU16(v.ContainerType)
	EncodeWorldPos(w, v.StartingPos)
	w.WriteF32(v.Angle)
}

type PlayerText struct {
	Text string
}

func decodePlayerText(r *wire.Reader) any { return PlayerText{Text: r.ReadString(wire.Prefix16)} }
func encodePlayerText(w *wire.Writer, p any) { w.WriteString(wire.Prefix16, p.(PlayerText).Text) }

type QuestRedeem struct {
	QuestID string
	Item    uint32
	Slots   []SlotObject
}

func decodeQuestRedeem(r *wire.Reader) any {
	return QuestRedeem{
		QuestID: r.ReadString(wire.Prefix16), Item: r.ReadU32(),
		Slots: wire.ReadVector(r, wire.Prefix16, DecodeSlotObject),
	}
}
func encodeQuestRedeem(w *wire.Writer, p any) {
	v := p.(QuestRedeem)
	w.WriteString(wire.Prefix16, v.QuestID)
	w.WriteU32(v.Item)
	wire.WriteVector(w, wire.Prefix16, v.Slots, EncodeSlotObject)
}

type QuestRoomMsg struct{}

func decodeQuestRoomMsg(r *wire.Reader) any { return QuestRoomMsg{} }
func encodeQuestRoomMsg(w *wire.Writer, p any) {}

type Pong struct {
	Serial uint32
	Time   uint32
}

func decodePong(r *wire.Reader) any { return Pong{Serial: r.ReadU32(), Time: r.ReadU32()} }
func encodePong(w *wire.Writer, p any) {
	v := p.(Pong)
	w.WriteU32(v.Serial)
	w.WriteU32(v.Time)
}

type RequestTrade struct {
	Name string
}

func decodeRequestTrade(r *wire.Reader) any { return RequestTrade{Name: r.ReadString(wire.Prefix16)} }
func encodeRequestTrade(w *wire.Writer, p any) { w.WriteString(wire.Prefix16, p.(RequestTrade).Name) }

type ResetDailyQuests struct{}

func decodeResetDailyQuests(r *wire.Reader) any { return ResetDailyQuests{} }
func encodeResetDailyQuests(w *wire.Writer, p any) {}

type Reskin struct {
	SkinID uint32
}

func decodeReskin(r *wire.Reader) any { return Reskin{SkinID: r.ReadU32()} }
func encodeReskin(w *wire.Writer, p any) { w.WriteU32(p.(Reskin).SkinID) }

type SetCondition struct {
	Effect   uint8
	Duration float32
}

func decodeSetCondition(r *wire.Reader) any {
	return SetCondition{Effect: r.ReadU8(), Duration: r.ReadF32()}
}
func encodeSetCondition(w *wire.Writer, p any) {
	v := p.(SetCondition)
	w.WriteU8(v.Effect)
	w.WriteF32(v.Duration)
}

type ShootAck struct {
	Time uint32
}

func decodeShootAck(r *wire.Reader) any { return ShootAck{Time: r.ReadU32()} }
func encodeShootAck(w *wire.Writer, p any) { w.WriteU32(p.(ShootAck).Time) }

type SquareHit struct {
	Time     uint32
	BulletID uint8
	ObjectID uint32
}

func decodeSquareHit(r *wire.Reader) any {
	return SquareHit{Time: r.ReadU32(), BulletID: r.ReadU8(), ObjectID: r.ReadU32()}
}
func encodeSquareHit(w *wire.Writer, p any) {
	v := p.(SquareHit)
	w.WriteU32(v.Time)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.ObjectID)
}

type Teleport struct {
	ObjectID uint32
}

func decodeTeleport(r *wire.Reader) any { return Teleport{ObjectID: r.ReadU32()} }
func encodeTeleport(w *wire.Writer, p any) { w.WriteU32(p.(Teleport).ObjectID) }

type UpdateAck struct{}

func decodeUpdateAck(r *wire.Reader) any { return UpdateAck{} }
func encodeUpdateAck(w *wire.Writer, p any) {}

type UseItem struct {
	Time    uint32
	Slot    SlotObject
	Pos     WorldPos
	UseType uint32
}

func decodeUseItem(r *wire.Reader) any {
	return UseItem{Time: r.ReadU32(), Slot: DecodeSlotObject(r), Pos: DecodeWorldPos(r), UseType: r.ReadU32()}
}
func encodeUseItem(w *wire.Writer, p any) {
	v := p.(UseItem)
	w.WriteU32(v.Time)
	EncodeSlotObject(w, v.Slot)
	EncodeWorldPos(w, v.Pos)
	w.WriteU32(v.UseType)
}

type UsePortal struct {
	ObjectID uint32
}

func decodeUsePortal(r *wire.Reader) any { return UsePortal{ObjectID: r.ReadU32()} }
func encodeUsePortal(w *wire.Writer, p any) { w.WriteU32(p.(UsePortal).ObjectID) }

// QuestFetchAsk and AcceptArenaDeath have no observed fields in any
// captured build.
type QuestFetchAsk struct{}

func decodeQuestFetchAsk(r *wire.Reader) any { return QuestFetchAsk{} }
func encodeQuestFetchAsk(w *wire.Writer, p any) {}

type AcceptArenaDeath struct{}

func decodeAcceptArenaDeath(r *wire.Reader) any { return AcceptArenaDeath{} }
func encodeAcceptArenaDeath(w *wire.Writer, p any) {}

func readBool(r *wire.Reader) bool { return r.ReadBool() }
func writeBool(w *wire.Writer, v bool) { w.WriteBool(v) }
