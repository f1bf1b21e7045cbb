package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shuttletrack/internal/model"
)

// stageData mirrors the four developmental stages of the curriculum. The
// letter ranges reproduce each stage's "primary alphabet focus": stage 1
// works a hand-picked set, later stages widen until the full A-Z is in play.
var stageData = []struct {
	id          uint
	name        string
	description string
	letters     []rune
}{
	{1, "Stable Movers", "Early Beginner. Visible ready position and split step, balanced front lunge, recovery to base without reminder. 8-12 shot cooperative rallies.", []rune("ABCELR")},
	{2, "Skill Builders", "Late Beginner / Early Intermediate. Full six-point coverage, automatic grip changes, 15-20 shot cooperative rallies, basic short serve introduction.", letterRange('A', 'P')},
	{3, "Tactical Developers", "Intermediate Competitive. Explosive first step, controlled smash, 20-30 shot rallies under pace, basic rally construction.", letterRange('A', 'V')},
	{4, "Match Performers", "Advanced / Tournament Level. Deceptive variations, tactical serve variation, 30+ shot rallies under match conditions, match planning and mid-game adjustment.", letterRange('A', 'Z')},
}

// skillData is the badminton alphabet: one competency per letter. The action
// phrase feeds the five-level rubric texts.
var skillData = []struct {
	letter rune
	name   string
	action string
}{
	{'A', "Agility & Split Step", "a timed split step from an athletic ready position"},
	{'B', "Balance & Lunge Control", "a balanced front lunge held for two seconds without knee collapse"},
	{'C', "Clear (Forehand Overhead)", "clean forehand clears reaching the backcourt"},
	{'D', "Drop Shot Control", "disguised drop shots landing inside the front service line"},
	{'E', "Eastern Forehand Grip", "a correct forehand grip without checking the hand"},
	{'F', "Footwork: Six-Corner Coverage", "smooth travel to all six corners and back to base"},
	{'G', "Grip Transitions", "automatic forehand-to-backhand grip changes mid-rally"},
	{'H', "High Serve", "legal high serves dropping deep in the receiver's court"},
	{'I', "Interception at the Net", "stepping in to take the shuttle early above net height"},
	{'J', "Jump & Scissor Landing", "a stable scissor-jump landing behind the shuttle"},
	{'K', "Kill Shot (Net Kill)", "a downward net kill from a tight net return"},
	{'L', "Lift (Underarm Defence)", "underarm lifts pushing the opponent to the rearcourt"},
	{'M', "Mid-Court Drives", "flat drives exchanged at pace through the mid-court"},
	{'N', "Net Play (Spin & Tumble)", "spinning and tumbling net shots that hug the tape"},
	{'O', "Overhead Backhand Clear", "a backhand clear from the rear corner under no pressure"},
	{'P', "Placement & Directional Control", "straight and cross-court placement on demand"},
	{'Q', "Quickness: First-Step Explosiveness", "an explosive first step in any direction"},
	{'R', "Recovery to Base", "recovery to base after every shot without reminder"},
	{'S', "Smash Power & Angle", "a controlled smash with a chosen steep angle"},
	{'T', "Tactical Rally Construction", "building a rally toward an identified opponent weakness"},
	{'U', "Underhand Short Serve", "tight short serves skimming the tape to the front line"},
	{'V', "Variation in Serve & Return", "varied serves and attacking returns chosen tactically"},
	{'W', "Winning Composure", "emotional reset and focus through close rallies"},
	{'X', "X-Factor: Deception", "disguised preparation selling one shot and playing another"},
	{'Y', "Yielding Defence (Block & Counter)", "soft blocks and counters that absorb smash pace"},
	{'Z', "Zone Control & Match Planning", "a match plan adjusted zone by zone mid-game"},
}

// rubricLevels builds the five mastery-level texts for one competency.
func rubricLevels(action string) [5]string {
	return [5]string{
		fmt.Sprintf("Introduced: attempts %s with coach guidance.", action),
		fmt.Sprintf("Developing: shows %s in slow cooperative drills.", action),
		fmt.Sprintf("Stable: demonstrates %s consistently in practice.", action),
		fmt.Sprintf("Applied: maintains %s at game pace in conditioned games.", action),
		fmt.Sprintf("Competitive: relies on %s under full match pressure.", action),
	}
}

// Rubric seeds the four stages, the 26-skill alphabet, and their stage
// associations. Re-running updates existing rows instead of duplicating them.
func Rubric(ctx context.Context, db *gorm.DB) error {
	for _, s := range stageData {
		stage := model.Stage{ID: s.id, Name: s.name, Description: s.description}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
		}).Create(&stage).Error; err != nil {
			return fmt.Errorf("seed stage %q: %w", s.name, err)
		}
	}

	for i, sk := range skillData {
		levels := rubricLevels(sk.action)
		skill := model.Skill{
			ID:          uint(i + 1),
			Name:        fmt.Sprintf("%c: %s", sk.letter, sk.name),
			Description: fmt.Sprintf("Letter %c of the badminton alphabet.", sk.letter),
			Level1:      levels[0],
			Level2:      levels[1],
			Level3:      levels[2],
			Level4:      levels[3],
			Level5:      levels[4],
		}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "level_1", "level_2", "level_3", "level_4", "level_5"}),
		}).Create(&skill).Error; err != nil {
			return fmt.Errorf("seed skill %q: %w", skill.Name, err)
		}
	}

	for _, s := range stageData {
		for _, letter := range s.letters {
			assoc := model.StageSkill{StageID: s.id, SkillID: skillID(letter)}
			if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
				Create(&assoc).Error; err != nil {
				return fmt.Errorf("seed stage %d skill %c: %w", s.id, letter, err)
			}
		}
	}

	return nil
}

// AdminUser seeds a bootstrap admin account if none exists with the email.
func AdminUser(ctx context.Context, db *gorm.DB, name, email, passwordHash string) error {
	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	}
	return db.WithContext(ctx).Where("email = ?", email).FirstOrCreate(&user).Error
}

func skillID(letter rune) uint {
	return uint(letter-'A') + 1
}

func letterRange(from, to rune) []rune {
	letters := make([]rune, 0, to-from+1)
	for l := from; l <= to; l++ {
		letters = append(letters, l)
	}
	return letters
}
