package utils

import (
	"math/rand"
	"time"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"gorm.io/gorm"
)

const joinCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueJoinCode produces a classroom join code no other
// classroom already uses.
func GenerateUniqueJoinCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, joinCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var classroom models.Classroom
		err := tx.Where("join_code = ?", code).First(&classroom).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
