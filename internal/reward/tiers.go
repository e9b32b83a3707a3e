package reward

import (
	"github.com/tovald/bossraid/internal/domain"
)

// Badge identifiers granted by the top rank bands.
const (
	BadgeSlayer   = "slayer"
	BadgeVanguard = "vanguard"
	BadgeRaider   = "raider"
)

// rankBand maps an inclusive rank range onto a payout.
type rankBand struct {
	minRank int
	maxRank int
	bundle  domain.RewardBundle
}

// rankBands is the fixed payout table, checked top band first. Ranks past
// the last band fall through to the baseline bundle.
var rankBands = []rankBand{
	{1, 1, domain.RewardBundle{SilverChests: 2, GoldChests: 3, LotteryTickets: 5, BadgeID: BadgeSlayer, BadgeDays: 7}},
	{2, 3, domain.RewardBundle{SilverChests: 3, GoldChests: 1, LotteryTickets: 3, BadgeID: BadgeVanguard, BadgeDays: 3}},
	{4, 10, domain.RewardBundle{BronzeChests: 2, SilverChests: 2, LotteryTickets: 2, BadgeID: BadgeRaider, BadgeDays: 1}},
	{11, 25, domain.RewardBundle{BronzeChests: 3, SilverChests: 1, LotteryTickets: 1}},
	{26, 50, domain.RewardBundle{BronzeChests: 2, SilverChests: 1, LotteryTickets: 1}},
	{51, 100, domain.RewardBundle{BronzeChests: 2, LotteryTickets: 1}},
}

// baselineBundle is the flat payout for eligible players ranked past the
// last band.
var baselineBundle = domain.RewardBundle{BronzeChests: 1, LotteryTickets: 1}

// BundleForRank returns the payout for a leaderboard rank, crystals already
// derived from the chest tiers.
func BundleForRank(rank int) domain.RewardBundle {
	bundle := baselineBundle
	for _, band := range rankBands {
		if rank >= band.minRank && rank <= band.maxRank {
			bundle = band.bundle
			break
		}
	}
	bundle.Crystals = crystalsFor(bundle)
	return bundle
}

// crystalsFor derives the additive crystal bonus from the chest counts.
func crystalsFor(b domain.RewardBundle) int {
	return b.GoldChests*domain.CrystalsPerGoldChest +
		b.SilverChests*domain.CrystalsPerSilverChest +
		b.BronzeChests*domain.CrystalsPerBronzeChest
}
