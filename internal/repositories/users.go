package repositories

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/dreamjob-store/internal/entities"
	"github.com/maxaizer/dreamjob-store/internal/metrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

const userEntity = "user"

var errEmailTaken = errors.New("email already taken")

// Users is the durable user store. Emails are compared case-insensitively and
// passwords are kept as bcrypt hashes.
type Users struct {
	db       *gorm.DB
	hashCost int
	validate *validator.Validate
}

func NewUsersRepository(db *gorm.DB, hashCost int) *Users {
	return &Users{db: db, hashCost: hashCost, validate: validator.New()}
}

// Save registers the user in a single INSERT ... ON CONFLICT (email) DO NOTHING
// statement, so concurrent registrations of one email cannot both succeed.
// A declined insert is rolled back so it does not advance the id sequence.
// A nil user with a nil error means the email is already taken.
func (repo *Users) Save(ctx context.Context, user entities.User) (*entities.User, error) {
	defer observe(userEntity, "save", time.Now())

	user.Email = entities.NormalizeEmail(user.Email)
	if err := repo.validate.Struct(user); err != nil {
		return nil, invalidEntity(userEntity, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), repo.hashCost)
	if err != nil {
		return nil, invalidEntity(userEntity, err)
	}

	record := entities.User{Email: user.Email, Name: user.Name, PasswordHash: string(hash)}
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
			Create(&record)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errEmailTaken
		}
		return nil
	})

	if errors.Is(err, errEmailTaken) {
		metrics.UserConflictsCounter.Inc()
		log.Debugf("user with email %s already exists", user.Email)
		return nil, nil
	}
	if err != nil {
		return nil, storageFault(userEntity, "save", err)
	}

	metrics.RegisteredUsersCounter.Inc()
	return &record, nil
}

// Delete removes the user only when both the email and the password match.
func (repo *Users) Delete(ctx context.Context, email, password string) (bool, error) {
	defer observe(userEntity, "delete", time.Now())

	deleted := false
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findByEmail(tx, email)
		if err != nil || user == nil || !passwordMatches(user, password) {
			return err
		}

		res := tx.Where("id = ? AND password_hash = ?", user.ID, user.PasswordHash).Delete(&entities.User{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, storageFault(userEntity, "delete", err)
	}
	return deleted, nil
}

func (repo *Users) FindByEmailAndPassword(ctx context.Context, email, password string) (*entities.User, error) {
	defer observe(userEntity, "find_by_credentials", time.Now())

	user, err := findByEmail(repo.db.WithContext(ctx), email)
	if err != nil {
		return nil, storageFault(userEntity, "find_by_credentials", err)
	}
	if user == nil || !passwordMatches(user, password) {
		return nil, nil
	}
	return user, nil
}

func (repo *Users) FindAll(ctx context.Context) ([]entities.User, error) {
	defer observe(userEntity, "find_all", time.Now())

	users := make([]entities.User, 0)
	if err := repo.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, storageFault(userEntity, "find_all", err)
	}
	return users, nil
}

func findByEmail(db *gorm.DB, email string) (*entities.User, error) {
	var user entities.User
	if err := db.First(&user, "email = ?", entities.NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func passwordMatches(user *entities.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
