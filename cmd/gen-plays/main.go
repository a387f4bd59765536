// gen-plays writes a synthetic play-by-play CSV with the columns the
// pipeline requires, useful for local runs and demos when the real dataset
// is not at hand.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// Generation defaults and ranges.
const (
	defaultGames         = 64
	defaultPlaysPerGame  = 120
	defaultSeed          = 1
	secondsPerHalf       = 1800
	gamesPerSeasonOffset = 100 // spreads game ids within a season band
)

var seasons = []int{2015, 2016, 2017, 2018, 2019}

func main() {
	var (
		out          = flag.String("out", "plays.csv", "Output CSV path")
		games        = flag.Int("games", defaultGames, "Number of games per season")
		playsPerGame = flag.Int("plays", defaultPlaysPerGame, "Number of plays per game")
		seed         = flag.Int64("seed", defaultSeed, "Random seed")
	)
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		os.Stderr.WriteString("failed to create output: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"game_id", "play_type", "half_seconds_remaining", "down", "ydstogo",
		"yardline_100", "score_differential", "posteam_timeouts_remaining",
	}
	if err := w.Write(header); err != nil {
		os.Stderr.WriteString("write failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	rows := 0
	for _, season := range seasons {
		for g := 0; g < *games; g++ {
			gameID := int64(season)*1000000 + int64(g)*gamesPerSeasonOffset + int64(rng.Intn(gamesPerSeasonOffset))
			for p := 0; p < *playsPerGame; p++ {
				if err := w.Write(playRow(rng, gameID)); err != nil {
					os.Stderr.WriteString("write failed: " + err.Error() + "\n")
					os.Exit(1)
				}
				rows++
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		os.Stderr.WriteString("flush failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	fmt.Printf("wrote %d plays to %s\n", rows, *out)
}

// playRow generates one play with situation-dependent play-type odds:
// fourth-and-long skews to kicks, short yardage skews to runs.
func playRow(rng *rand.Rand, gameID int64) []string {
	down := 1 + rng.Intn(4)
	ytg := 1 + rng.Intn(15)
	yardline := 1 + rng.Intn(99)
	halfSeconds := rng.Intn(secondsPerHalf)
	scoreDiff := rng.Intn(29) - 14
	timeouts := rng.Intn(4)

	playType := pickPlayType(rng, down, ytg, yardline)

	return []string{
		strconv.FormatInt(gameID, 10),
		playType,
		strconv.Itoa(halfSeconds),
		strconv.Itoa(down),
		strconv.Itoa(ytg),
		strconv.Itoa(yardline),
		strconv.Itoa(scoreDiff),
		strconv.Itoa(timeouts),
	}
}

func pickPlayType(rng *rand.Rand, down, ytg, yardline int) string {
	if down == 4 {
		switch {
		case yardline <= 35:
			return "field_goal"
		case ytg > 2:
			return "punt"
		}
	}
	// Occasional no-play rows exercise the cleanser's category filter.
	if rng.Intn(50) == 0 {
		return "no_play"
	}
	if ytg <= 3 && rng.Float64() < 0.6 {
		return "run"
	}
	if rng.Float64() < 0.55 {
		return "pass"
	}
	return "run"
}
