package component

// PlayerTag marks the participant driven by the local keyboard.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// BotTag marks participants driven by BotInputSystem.
type BotTag struct{}

var BotTagComponent = NewComponent[BotTag]()

type MeteorTag struct{}

var MeteorTagComponent = NewComponent[MeteorTag]()
