package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tovald/bossraid/internal/domain"
)

func TestBundleForRank_Bands(t *testing.T) {
	tests := []struct {
		name string
		rank int
		want domain.RewardBundle
	}{
		{
			name: "rank 1 gets the slayer payout",
			rank: 1,
			want: domain.RewardBundle{SilverChests: 2, GoldChests: 3, LotteryTickets: 5, BadgeID: BadgeSlayer, BadgeDays: 7},
		},
		{
			name: "rank 3 is still vanguard",
			rank: 3,
			want: domain.RewardBundle{SilverChests: 3, GoldChests: 1, LotteryTickets: 3, BadgeID: BadgeVanguard, BadgeDays: 3},
		},
		{
			name: "rank 10 closes the raider band",
			rank: 10,
			want: domain.RewardBundle{BronzeChests: 2, SilverChests: 2, LotteryTickets: 2, BadgeID: BadgeRaider, BadgeDays: 1},
		},
		{
			name: "rank 11 drops the badge",
			rank: 11,
			want: domain.RewardBundle{BronzeChests: 3, SilverChests: 1, LotteryTickets: 1},
		},
		{
			name: "rank 50 closes the mid band",
			rank: 50,
			want: domain.RewardBundle{BronzeChests: 2, SilverChests: 1, LotteryTickets: 1},
		},
		{
			name: "rank 100 is the last ranked payout",
			rank: 100,
			want: domain.RewardBundle{BronzeChests: 2, LotteryTickets: 1},
		},
		{
			name: "rank 101 falls to the baseline",
			rank: 101,
			want: domain.RewardBundle{BronzeChests: 1, LotteryTickets: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Crystals = crystalsFor(tt.want)
			assert.Equal(t, tt.want, BundleForRank(tt.rank))
		})
	}
}

func TestCrystalsFor(t *testing.T) {
	b := domain.RewardBundle{BronzeChests: 2, SilverChests: 2, GoldChests: 3}
	want := 3*domain.CrystalsPerGoldChest + 2*domain.CrystalsPerSilverChest + 2*domain.CrystalsPerBronzeChest
	assert.Equal(t, want, crystalsFor(b))
}
