package domain

// Achievement identifies a player milestone.
type Achievement string

// Known achievements
const (
	AchievementFirstGame         Achievement = "first_game"
	AchievementFirstWin          Achievement = "first_win"
	AchievementPerfectScore      Achievement = "perfect_score"
	AchievementMasterWater       Achievement = "master_water"
	AchievementMasterNPK         Achievement = "master_npk"
	AchievementMasterSoil        Achievement = "master_soil"
	AchievementMasterRotation    Achievement = "master_rotation"
	AchievementMasterNASA        Achievement = "master_nasa"
	AchievementAllCompetences50  Achievement = "all_competences_50"
	AchievementAllCompetences100 Achievement = "all_competences_100"
	AchievementThreeStarsFive    Achievement = "three_stars_5_crops"
	AchievementPlay10            Achievement = "play_10_games"
	AchievementPlay50            Achievement = "play_50_games"
	AchievementPlay100           Achievement = "play_100_games"
	AchievementWinStreakThree    Achievement = "win_streak_3"
	AchievementWinStreakFive     Achievement = "win_streak_5"
	AchievementWinStreakTen      Achievement = "win_streak_10"
)

// MasterAchievement returns the mastery achievement for a skill.
func MasterAchievement(skill Skill) Achievement {
	return Achievement("master_" + string(skill))
}
