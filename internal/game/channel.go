package game

// Channel is one of the six input lanes.
type Channel uint8

const (
	ChannelS Channel = iota
	ChannelD
	ChannelF
	ChannelJ
	ChannelK
	ChannelL

	NumChannels = 6
)

var Channels = [NumChannels]Channel{ChannelS, ChannelD, ChannelF, ChannelJ, ChannelK, ChannelL}

var channelLabels = [NumChannels]string{"S", "D", "F", "J", "K", "L"}

func (c Channel) String() string {
	if !c.Valid() {
		return "?"
	}
	return channelLabels[c]
}

func (c Channel) Valid() bool {
	return c < NumChannels
}

// ChannelFromLabel maps a lane letter, either case, to its channel
func ChannelFromLabel(r rune) (Channel, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	for i, label := range channelLabels {
		if label[0] == byte(r) {
			return Channel(i), true
		}
	}
	return 0, false
}
