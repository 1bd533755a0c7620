package protocol

import "github.com/oryxlabs/realmcore/pkg/wire"

// Server-originated packets, in declaration order (fixes the tail half
// of the internal tag assignment; see Kind in registry.go).

type AccountList struct {
	AccountListID uint32
	AccountIDs    []string
	LockAction    uint32
}

func decodeAccountList(r *wire.Reader) any {
	return AccountList{
		AccountListID: r.ReadU32(),
		AccountIDs:    wire.ReadVector(r, wire.Prefix16, func(r *wire.Reader) string { return r.ReadString(wire.Prefix16) }),
		LockAction:    r.ReadU32(),
	}
}
func encodeAccountList(w *wire.Writer, p any) {
	v := p.(AccountList)
	w.WriteU32(v.AccountListID)
	wire.WriteVector(w, wire.Prefix16, v.AccountIDs, func(w *wire.Writer, s string) { w.WriteString(wire.Prefix16, s) })
	w.WriteU32(v.LockAction)
}

type ActivePetUpdate struct {
	InstanceID uint32
}

func decodeActivePetUpdate(r *wire.Reader) any { return ActivePetUpdate{InstanceID: r.ReadU32()} }
func encodeActivePetUpdate(w *wire.Writer, p any) { w.WriteU32(p.(ActivePetUpdate).InstanceID) }

type AllyShoot struct {
	BulletID      uint8
	OwnerID       uint32
	ContainerType uint16
	Angle         float32
}

func decodeAllyShoot(r *wire.Reader) any {
	return AllyShoot{BulletID: r.ReadU8(), OwnerID: r.ReadU32(), ContainerType: r.ReadU16(), Angle: r.ReadF32()}
}
func encodeAllyShoot(w *wire.Writer, p any) {
	v := p.(AllyShoot)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.OwnerID)
	w.WriteU16(v.ContainerType)
	w.WriteF32(v.Angle)
}

type Aoe struct {
	Pos         WorldPos
	Radius      float32
	Damage      uint16
	Effect      uint8
	Duration    float32
	OrigType    uint16
	Color       uint32
	ArmorPierce bool
}

func decodeAoe(r *wire.Reader) any {
	return Aoe{
		Pos: DecodeWorldPos(r), Radius: r.ReadF32(), Damage: r.ReadU16(), Effect: r.ReadU8(),
		Duration: r.ReadF32(), OrigType: r.ReadU16(), Color: r.ReadU32(), ArmorPierce: r.ReadBool(),
	}
}
func encodeAoe(w *wire.Writer, p any) {
	v := p.(Aoe)
	EncodeWorldPos(w, v.Pos)
	w.WriteF32(v.Radius)
	w.WriteU16(v.Damage)
	w.WriteU8(v.Effect)
	w.WriteF32(v.Duration)
	w.WriteU16(v.OrigType)
	w.WriteU32(v.Color)
	w.WriteBool(v.ArmorPierce)
}

type ArenaDeath struct {
	Cost uint32
}

func decodeArenaDeath(r *wire.Reader) any { return ArenaDeath{Cost: r.ReadU32()} }
func encodeArenaDeath(w *wire.Writer, p any) { w.WriteU32(p.(ArenaDeath).Cost) }

type BuyResult struct {
	Result       uint32
	ResultString string
}

func decodeBuyResult(r *wire.Reader) any {
	return BuyResult{Result: r.ReadU32(), ResultString: r.ReadString(wire.Prefix16)}
}
func encodeBuyResult(w *wire.Writer, p any) {
	v := p.(BuyResult)
	w.WriteU32(v.Result)
	w.WriteString(wire.Prefix16, v.ResultString)
}

type ClientStat struct {
	Name  string
	Value uint32
}

func decodeClientStat(r *wire.Reader) any {
	return ClientStat{Name: r.ReadString(wire.Prefix16), Value: r.ReadU32()}
}
func encodeClientStat(w *wire.Writer, p any) {
	v := p.(ClientStat)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteU32(v.Value)
}

type CreateSuccess struct {
	ObjectID uint32
	CharID   uint32
}

func decodeCreateSuccess(r *wire.Reader) any {
	return CreateSuccess{ObjectID: r.ReadU32(), CharID: r.ReadU32()}
}
func encodeCreateSuccess(w *wire.Writer, p any) {
	v := p.(CreateSuccess)
	w.WriteU32(v.ObjectID)
	w.WriteU32(v.CharID)
}

// Damage carries an effects byte sequence with an 8-bit length prefix,
// unlike every other vector/string field in the catalogue.
type Damage struct {
	TargetID    uint32
	Effects     []byte
	DamageAmount uint16
	Kill        bool
	ArmorPierce bool
	BulletID    uint8
	ObjectID    uint32
}

func decodeDamage(r *wire.Reader) any {
	return Damage{
		TargetID: r.ReadU32(), Effects: r.ReadLenPrefixedBytes(wire.Prefix8),
		DamageAmount: r.ReadU16(), Kill: r.ReadBool(), ArmorPierce: r.ReadBool(),
		BulletID: r.ReadU8(), ObjectID: r.ReadU32(),
	}
}
func encodeDamage(w *wire.Writer, p any) {
	v := p.(Damage)
	w.WriteU32(v.TargetID)
	w.WriteLenPrefixedBytes(wire.Prefix8, v.Effects)
	w.WriteU16(v.DamageAmount)
	w.WriteBool(v.Kill)
	w.WriteBool(v.ArmorPierce)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.ObjectID)
}

type Death struct {
	AccountID  string
	CharID     uint32
	KilledBy   string
	ZombieType uint32
	ZombieID   uint32
}

func decodeDeath(r *wire.Reader) any {
	return Death{
		AccountID: r.ReadString(wire.Prefix16), CharID: r.ReadU32(),
		KilledBy: r.ReadString(wire.Prefix16), ZombieType: r.ReadU32(), ZombieID: r.ReadU32(),
	}
}
func encodeDeath(w *wire.Writer, p any) {
	v := p.(Death)
	w.WriteString(wire.Prefix16, v.AccountID)
	w.WriteU32(v.CharID)
	w.WriteString(wire.Prefix16, v.KilledBy)
	w.WriteU32(v.ZombieType)
	w.WriteU32(v.ZombieID)
}

type DeletePet struct {
	PetID uint32
}

func decodeDeletePet(r *wire.Reader) any { return DeletePet{PetID: r.ReadU32()} }
func encodeDeletePet(w *wire.Writer, p any) { w.WriteU32(p.(DeletePet).PetID) }

// EnemyShoot ends with two trailing Option fields; both are decoded only
// if bytes remain, and only ever both present or both absent in
// practice, but each Option is independently trailing-safe.
type EnemyShoot struct {
	BulletID    uint8
	OwnerID     uint32
	BulletType  uint8
	StartingPos WorldPos
	Angle       float32
	Damage      uint16
	NumShots    *uint8
	AngleInc    *float32
}

func decodeEnemyShoot(r *wire.Reader) any {
	v := EnemyShoot{
		BulletID: r.ReadU8(), OwnerID: r.ReadU32(), BulletType: r.ReadU8(),
		StartingPos: DecodeWorldPos(r), Angle: r.ReadF32(), Damage: r.ReadU16(),
	}
	v.NumShots = wire.ReadOption(r, func(r *wire.Reader) uint8 { return r.ReadU8() })
	v.AngleInc = wire.ReadOption(r, func(r *wire.Reader) float32 { return r.ReadF32() })
	return v
}
func encodeEnemyShoot(w *wire.Writer, p any) {
	v := p.(EnemyShoot)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.OwnerID)
	w.WriteU8(v.BulletType)
	EncodeWorldPos(w, v.StartingPos)
	w.WriteF32(v.Angle)
	w.WriteU16(v.Damage)
	wire.WriteOption(w, v.NumShots, func(w *wire.Writer, x uint8) { w.WriteU8(x) })
	wire.WriteOption(w, v.AngleInc, func(w *wire.Writer, x float32) { w.WriteF32(x) })
}

type EvolvePet struct {
	PetID       uint32
	InitialSkin uint32
	FinalSkin   uint32
}

func decodeEvolvePet(r *wire.Reader) any {
	return EvolvePet{PetID: r.ReadU32(), InitialSkin: r.ReadU32(), FinalSkin: r.ReadU32()}
}
func encodeEvolvePet(w *wire.Writer, p any) {
	v := p.(EvolvePet)
	w.WriteU32(v.PetID)
	w.WriteU32(v.InitialSkin)
	w.WriteU32(v.FinalSkin)
}

type Failure struct {
	ErrorID          uint32
	ErrorDescription string
}

func decodeFailure(r *wire.Reader) any {
	return Failure{ErrorID: r.ReadU32(), ErrorDescription: r.ReadString(wire.Prefix16)}
}
func encodeFailure(w *wire.Writer, p any) {
	v := p.(Failure)
	w.WriteU32(v.ErrorID)
	w.WriteString(wire.Prefix16, v.ErrorDescription)
}

// File carries a 32-bit-prefixed payload, since client asset files
// routinely exceed the 65535-byte ceiling of a 16-bit length.
type File struct {
	Filename string
	Contents string
}

func decodeFile(r *wire.Reader) any {
	return File{Filename: r.ReadString(wire.Prefix16), Contents: r.ReadString(wire.Prefix32)}
}
func encodeFile(w *wire.Writer, p any) {
	v := p.(File)
	w.WriteString(wire.Prefix16, v.Filename)
	w.WriteString(wire.Prefix32, v.Contents)
}

type GlobalNotification struct {
	NotificationType uint32
	Text             string
}

func decodeGlobalNotification(r *wire.Reader) any {
	return GlobalNotification{NotificationType: r.ReadU32(), Text: r.ReadString(wire.Prefix16)}
}
func encodeGlobalNotification(w *wire.Writer, p any) {
	v := p.(GlobalNotification)
	w.WriteU32(v.NotificationType)
	w.WriteString(wire.Prefix16, v.Text)
}

type Goto struct {
	ObjectID uint32
	Pos      WorldPos
}

func decodeGoto(r *wire.Reader) any { return Goto{ObjectID: r.ReadU32(), Pos: DecodeWorldPos(r)} }
func encodeGoto(w *wire.Writer, p any) {
	v := p.(Goto)
	w.WriteU32(v.ObjectID)
	EncodeWorldPos(w, v.Pos)
}

type GuildResult struct {
	Success         bool
	LineBuilderJSON string
}

func decodeGuildResult(r *wire.Reader) any {
	return GuildResult{Success: r.ReadBool(), LineBuilderJSON: r.ReadString(wire.Prefix16)}
}
func encodeGuildResult(w *wire.Writer, p any) {
	v := p.(GuildResult)
	w.WriteBool(v.Success)
	w.WriteString(wire.Prefix16, v.LineBuilderJSON)
}

type HatchPet struct {
	PetName  string
	PetSkin  uint32
	ItemType uint32
}

func decodeHatchPet(r *wire.Reader) any {
	return HatchPet{PetName: r.ReadString(wire.Prefix16), PetSkin: r.ReadU32(), ItemType: r.ReadU32()}
}
func encodeHatchPet(w *wire.Writer, p any) {
	v := p.(HatchPet)
	w.WriteString(wire.Prefix16, v.PetName)
	w.WriteU32(v.PetSkin)
	w.WriteU32(v.ItemType)
}

type InvResult struct {
	Result uint32
}

func decodeInvResult(r *wire.Reader) any { return InvResult{Result: r.ReadU32()} }
func encodeInvResult(w *wire.Writer, p any) { w.WriteU32(p.(InvResult).Result) }

type InvitedToGuild struct {
	Name      string
	GuildName string
}

func decodeInvitedToGuild(r *wire.Reader) any {
	return InvitedToGuild{Name: r.ReadString(wire.Prefix16), GuildName: r.ReadString(wire.Prefix16)}
}
func encodeInvitedToGuild(w *wire.Writer, p any) {
	v := p.(InvitedToGuild)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteString(wire.Prefix16, v.GuildName)
}

type ImminentArenaWave struct {
	CurrentRuntime uint32
}

func decodeImminentArenaWave(r *wire.Reader) any {
	return ImminentArenaWave{CurrentRuntime: r.ReadU32()}
}
func encodeImminentArenaWave(w *wire.Writer, p any) {
	w.WriteU32(p.(ImminentArenaWave).CurrentRuntime)
}

type KeyInfoResponse struct {
	Name        string
	Description string
	Creator     string
}

func decodeKeyInfoResponse(r *wire.Reader) any {
	return KeyInfoResponse{
		Name: r.ReadString(wire.Prefix16), Description: r.ReadString(wire.Prefix16), Creator: r.ReadString(wire.Prefix16),
	}
}
func encodeKeyInfoResponse(w *wire.Writer, p any) {
	v := p.(KeyInfoResponse)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteString(wire.Prefix16, v.Description)
	w.WriteString(wire.Prefix16, v.Creator)
}

type LoginRewardMsg struct {
	ItemID   uint32
	Quantity uint32
	Gold     uint32
}

func decodeLoginRewardMsg(r *wire.Reader) any {
	return LoginRewardMsg{ItemID: r.ReadU32(), Quantity: r.ReadU32(), Gold: r.ReadU32()}
}
func encodeLoginRewardMsg(w *wire.Writer, p any) {
	v := p.(LoginRewardMsg)
	w.WriteU32(v.ItemID)
	w.WriteU32(v.Quantity)
	w.WriteU32(v.Gold)
}

// xmlString32 is a single XML document field with a 32-bit length
// prefix, nested inside a 16-bit-prefixed vector in MapInfo.
func decodeXMLString32(r *wire.Reader) string  { return r.ReadString(wire.Prefix32) }
func encodeXMLString32(w *wire.Writer, s string) { w.WriteString(wire.Prefix32, s) }

type MapInfo struct {
	Width               uint32
	Height              uint32
	Name                string
	DisplayName         string
	Fp                  uint32
	Background          uint32
	Difficulty          uint32
	AllowPlayerTeleport bool
	ShowDisplays        bool
	ClientXML           []string
	ExtraXML            []string
}

func decodeMapInfo(r *wire.Reader) any {
	return MapInfo{
		Width: r.ReadU32(), Height: r.ReadU32(),
		Name: r.ReadString(wire.Prefix16), DisplayName: r.ReadString(wire.Prefix16),
		Fp: r.ReadU32(), Background: r.ReadU32(), Difficulty: r.ReadU32(),
		AllowPlayerTeleport: r.ReadBool(), ShowDisplays: r.ReadBool(),
		ClientXML: wire.ReadVector(r, wire.Prefix16, decodeXMLString32),
		ExtraXML:  wire.ReadVector(r, wire.Prefix16, decodeXMLString32),
	}
}
func encodeMapInfo(w *wire.Writer, p any) {
	v := p.(MapInfo)
	w.WriteU32(v.Width)
	w.WriteU32(v.Height)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteString(wire.Prefix16, v.DisplayName)
	w.WriteU32(v.Fp)
	w.WriteU32(v.Background)
	w.WriteU32(v.Difficulty)
	w.WriteBool(v.AllowPlayerTeleport)
	w.WriteBool(v.ShowDisplays)
	wire.WriteVector(w, wire.Prefix16, v.ClientXML, encodeXMLString32)
	wire.WriteVector(w, wire.Prefix16, v.ExtraXML, encodeXMLString32)
}

type NameResult struct {
	Success   bool
	ErrorText string
}

func decodeNameResult(r *wire.Reader) any {
	return NameResult{Success: r.ReadBool(), ErrorText: r.ReadString(wire.Prefix16)}
}
func encodeNameResult(w *wire.Writer, p any) {
	v := p.(NameResult)
	w.WriteBool(v.Success)
	w.WriteString(wire.Prefix16, v.ErrorText)
}

type NewAbility struct {
	Typ uint32
}

func decodeNewAbility(r *wire.Reader) any { return NewAbility{Typ: r.ReadU32()} }
func encodeNewAbility(w *wire.Writer, p any) { w.WriteU32(p.(NewAbility).Typ) }

type NewTick struct {
	TickID   uint32
	TickTime uint32
	Statuses []ObjectStatus
}

func decodeNewTick(r *wire.Reader) any {
	return NewTick{
		TickID: r.ReadU32(), TickTime: r.ReadU32(),
		Statuses: wire.ReadVector(r, wire.Prefix16, DecodeObjectStatus),
	}
}
func encodeNewTick(w *wire.Writer, p any) {
	v := p.(NewTick)
	w.WriteU32(v.TickID)
	w.WriteU32(v.TickTime)
	wire.WriteVector(w, wire.Prefix16, v.Statuses, EncodeObjectStatus)
}

type Notification struct {
	ObjectID uint32
	Message  string
	Color    uint32
}

func decodeNotification(r *wire.Reader) any {
	return Notification{ObjectID: r.ReadU32(), Message: r.ReadString(wire.Prefix16), Color: r.ReadU32()}
}
func encodeNotification(w *wire.Writer, p any) {
	v := p.(Notification)
	w.WriteU32(v.ObjectID)
	w.WriteString(wire.Prefix16, v.Message)
	w.WriteU32(v.Color)
}

type PasswordPrompt struct {
	CleanPasswordStatus uint32
}

func decodePasswordPrompt(r *wire.Reader) any {
	return PasswordPrompt{CleanPasswordStatus: r.ReadU32()}
}
func encodePasswordPrompt(w *wire.Writer, p any) {
	w.WriteU32(p.(PasswordPrompt).CleanPasswordStatus)
}

type PetYardUpdate struct {
	Typ uint32
}

func decodePetYardUpdate(r *wire.Reader) any { return PetYardUpdate{Typ: r.ReadU32()} }
func encodePetYardUpdate(w *wire.Writer, p any) { w.WriteU32(p.(PetYardUpdate).Typ) }

// Pic is hand-adapted: a raw RGBA bitmap with no length prefix of its
// own, sized by width*height*4 and bounds-checked against the remaining
// frame bytes.
type Pic struct {
	W          uint32
	H          uint32
	BitmapData []byte
}

func decodePic(r *wire.Reader) any {
	w := r.ReadU32()
	h := r.ReadU32()
	if r.Err() != nil {
		return Pic{}
	}
	n := int(w) * int(h) * 4
	data := r.ReadBytes(n)
	return Pic{W: w, H: h, BitmapData: data}
}
func encodePic(w *wire.Writer, p any) {
	v := p.(Pic)
	w.WriteU32(v.W)
	w.WriteU32(v.H)
	w.WriteBytes(v.BitmapData)
}

type Ping struct {
	Serial uint32
}

func decodePing(r *wire.Reader) any { return Ping{Serial: r.ReadU32()} }
func encodePing(w *wire.Writer, p any) { w.WriteU32(p.(Ping).Serial) }

type PlaySound struct {
	OwnerID uint32
	SoundID uint8
}

func decodePlaySound(r *wire.Reader) any { return PlaySound{OwnerID: r.ReadU32(), SoundID: r.ReadU8()} }
func encodePlaySound(w *wire.Writer, p any) {
	v := p.(PlaySound)
	w.WriteU32(v.OwnerID)
	w.WriteU8(v.SoundID)
}

type QuestObjID struct {
	ObjectID uint32
}

func decodeQuestObjID(r *wire.Reader) any { return QuestObjID{ObjectID: r.ReadU32()} }
func encodeQuestObjID(w *wire.Writer, p any) { w.WriteU32(p.(QuestObjID).ObjectID) }

type QuestFetchResponse struct {
	Quests            []Quest
	NextRefreshPrice  uint32
}

func decodeQuestFetchResponse(r *wire.Reader) any {
	return QuestFetchResponse{
		Quests:           wire.ReadVector(r, wire.Prefix16, DecodeQuest),
		NextRefreshPrice: r.ReadU32(),
	}
}
func encodeQuestFetchResponse(w *wire.Writer, p any) {
	v := p.(QuestFetchResponse)
	wire.WriteVector(w, wire.Prefix16, v.Quests, EncodeQuest)
	w.WriteU32(v.NextRefreshPrice)
}

type QuestRedeemResponse struct {
	OK      bool
	Message string
}

func decodeQuestRedeemResponse(r *wire.Reader) any {
	return QuestRedeemResponse{OK: r.ReadBool(), Message: r.ReadString(wire.Prefix16)}
}
func encodeQuestRedeemResponse(w *wire.Writer, p any) {
	v := p.(QuestRedeemResponse)
	w.WriteBool(v.OK)
	w.WriteString(wire.Prefix16, v.Message)
}

type RealmHeroLeftMsg struct {
	NumberOfRealmHeroes uint32
}

func decodeRealmHeroLeftMsg(r *wire.Reader) any {
	return RealmHeroLeftMsg{NumberOfRealmHeroes: r.ReadU32()}
}
func encodeRealmHeroLeftMsg(w *wire.Writer, p any) {
	w.WriteU32(p.(RealmHeroLeftMsg).NumberOfRealmHeroes)
}

type Reconnect struct {
	Name        string
	Host        string
	Stats       string
	Port        uint32
	GameID      uint32
	KeyTime     uint32
	IsFromArena bool
	Key         []byte
}

func decodeReconnect(r *wire.Reader) any {
	return Reconnect{
		Name: r.ReadString(wire.Prefix16), Host: r.ReadString(wire.Prefix16), Stats: r.ReadString(wire.Prefix16),
		Port: r.ReadU32(), GameID: r.ReadU32(), KeyTime: r.ReadU32(), IsFromArena: r.ReadBool(),
		Key: r.ReadLenPrefixedBytes(wire.Prefix16),
	}
}
func encodeReconnect(w *wire.Writer, p any) {
	v := p.(Reconnect)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteString(wire.Prefix16, v.Host)
	w.WriteString(wire.Prefix16, v.Stats)
	w.WriteU32(v.Port)
	w.WriteU32(v.GameID)
	w.WriteU32(v.KeyTime)
	w.WriteBool(v.IsFromArena)
	w.WriteLenPrefixedBytes(wire.Prefix16, v.Key)
}

type ReskinUnlock struct {
	SkinID    uint32
	IsPetSkin uint32
}

func decodeReskinUnlock(r *wire.Reader) any {
	return ReskinUnlock{SkinID: r.ReadU32(), IsPetSkin: r.ReadU32()}
}
func encodeReskinUnlock(w *wire.Writer, p any) {
	v := p.(ReskinUnlock)
	w.WriteU32(v.SkinID)
	w.WriteU32(v.IsPetSkin)
}

type ServerPlayerShoot struct {
	BulletID      uint8
	OwnerID       uint32
	ContainerType uint32
	StartingPos   WorldPos
	Angle         float32
	Damage        uint16
}

func decodeServerPlayerShoot(r *wire.Reader) any {
	return ServerPlayerShoot{
		BulletID: r.ReadU8(), OwnerID: r.ReadU32(), ContainerType: r.ReadU32(),
		StartingPos: DecodeWorldPos(r), Angle: r.ReadF32(), Damage: r.ReadU16(),
	}
}
func encodeServerPlayerShoot(w *wire.Writer, p any) {
	v := p.(ServerPlayerShoot)
	w.WriteU8(v.BulletID)
	w.WriteU32(v.OwnerID)
	w.WriteU32(v.ContainerType)
	EncodeWorldPos(w, v.StartingPos)
	w.WriteF32(v.Angle)
	w.WriteU16(v.Damage)
}

type ShowEffect struct {
	EffectType     uint8
	TargetObjectID uint32
	Pos1           WorldPos
	Pos2           WorldPos
	Color          uint32
	Duration       float32
}

func decodeShowEffect(r *wire.Reader) any {
	return ShowEffect{
		EffectType: r.ReadU8(), TargetObjectID: r.ReadU32(),
		Pos1: DecodeWorldPos(r), Pos2: DecodeWorldPos(r),
		Color: r.ReadU32(), Duration: r.ReadF32(),
	}
}
func encodeShowEffect(w *wire.Writer, p any) {
	v := p.(ShowEffect)
	w.WriteU8(v.EffectType)
	w.WriteU32(v.TargetObjectID)
	EncodeWorldPos(w, v.Pos1)
	EncodeWorldPos(w, v.Pos2)
	w.WriteU32(v.Color)
	w.WriteF32(v.Duration)
}

type Text struct {
	Name        string
	ObjectID    uint32
	NumStars    uint32
	BubbleTime  uint8
	Recipient   string
	TextBody    string
	CleanText   string
	IsSupporter bool
}

func decodeText(r *wire.Reader) any {
	return Text{
		Name: r.ReadString(wire.Prefix16), ObjectID: r.ReadU32(), NumStars: r.ReadU32(),
		BubbleTime: r.ReadU8(), Recipient: r.ReadString(wire.Prefix16),
		TextBody: r.ReadString(wire.Prefix16), CleanText: r.ReadString(wire.Prefix16),
		IsSupporter: r.ReadBool(),
	}
}
func encodeText(w *wire.Writer, p any) {
	v := p.(Text)
	w.WriteString(wire.Prefix16, v.Name)
	w.WriteU32(v.ObjectID)
	w.WriteU32(v.NumStars)
	w.WriteU8(v.BubbleTime)
	w.WriteString(wire.Prefix16, v.Recipient)
	w.WriteString(wire.Prefix16, v.TextBody)
	w.WriteString(wire.Prefix16, v.CleanText)
	w.WriteBool(v.IsSupporter)
}

type TradeAccepted struct {
	MyOffer   []bool
	YourOffer []bool
}

func decodeTradeAccepted(r *wire.Reader) any {
	return TradeAccepted{
		MyOffer:   wire.ReadVector(r, wire.Prefix16, readBool),
		YourOffer: wire.ReadVector(r, wire.Prefix16, readBool),
	}
}
func encodeTradeAccepted(w *wire.Writer, p any) {
	v := p.(TradeAccepted)
	wire.WriteVector(w, wire.Prefix16, v.MyOffer, writeBool)
	wire.WriteVector(w, wire.Prefix16, v.YourOffer, writeBool)
}

type TradeChanged struct {
	Offer []bool
}

func decodeTradeChanged(r *wire.Reader) any {
	return TradeChanged{Offer: wire.ReadVector(r, wire.Prefix16, readBool)}
}
func encodeTradeChanged(w *wire.Writer, p any) {
	wire.WriteVector(w, wire.Prefix16, p.(TradeChanged).Offer, writeBool)
}

type TradeDone struct {
	Code        uint32
	Description string
}

func decodeTradeDone(r *wire.Reader) any {
	return TradeDone{Code: r.ReadU32(), Description: r.ReadString(wire.Prefix16)}
}
func encodeTradeDone(w *wire.Writer, p any) {
	v := p.(TradeDone)
	w.WriteU32(v.Code)
	w.WriteString(wire.Prefix16, v.Description)
}

type TradeRequested struct {
	Name string
}

func decodeTradeRequested(r *wire.Reader) any { return TradeRequested{Name: r.ReadString(wire.Prefix16)} }
func encodeTradeRequested(w *wire.Writer, p any) {
	w.WriteString(wire.Prefix16, p.(TradeRequested).Name)
}

type TradeStart struct {
	MyItems   []TradeItem
	YourName  string
	YourItems []TradeItem
}

func decodeTradeStart(r *wire.Reader) any {
	return TradeStart{
		MyItems:   wire.ReadVector(r, wire.Prefix16, DecodeTradeItem),
		YourName:  r.ReadString(wire.Prefix16),
		YourItems: wire.ReadVector(r, wire.Prefix16, DecodeTradeItem),
	}
}
func encodeTradeStart(w *wire.Writer, p any) {
	v := p.(TradeStart)
	wire.WriteVector(w, wire.Prefix16, v.MyItems, EncodeTradeItem)
	w.WriteString(wire.Prefix16, v.YourName)
	wire.WriteVector(w, wire.Prefix16, v.YourItems, EncodeTradeItem)
}

type Update struct {
	Tiles   []GroundTile
	NewObjs []ObjectEntry
	Drops   []uint32
}

func decodeUpdate(r *wire.Reader) any {
	return Update{
		Tiles:   wire.ReadVector(r, wire.Prefix16, DecodeGroundTile),
		NewObjs: wire.ReadVector(r, wire.Prefix16, DecodeObjectEntry),
		Drops:   wire.ReadVector(r, wire.Prefix16, func(r *wire.Reader) uint32 { return r.ReadU32() }),
	}
}
func encodeUpdate(w *wire.Writer, p any) {
	v := p.(Update)
	wire.WriteVector(w, wire.Prefix16, v.Tiles, EncodeGroundTile)
	wire.WriteVector(w, wire.Prefix16, v.NewObjs, EncodeObjectEntry)
	wire.WriteVector(w, wire.Prefix16, v.Drops, func(w *wire.Writer, x uint32) { w.WriteU32(x) })
}

type VerifyEmail struct{}

func decodeVerifyEmail(r *wire.Reader) any { return VerifyEmail{} }
func encodeVerifyEmail(w *wire.Writer, p any) {}
