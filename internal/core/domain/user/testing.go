package user

import (
	c "carshare/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmailWithLock(ctx context.Context, email c.Email) (u User, err error) {
	return r.GetByEmail(ctx, email)
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.DoFirstNameUpdate {
				r.Users[ix].FirstName = input.FirstName
			}
			if input.DoLastNameUpdate {
				r.Users[ix].LastName = input.LastName
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordResetCode(ctx context.Context, id ID, code ResetCode) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password reset code for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordResetCode = c.NewOptional(code, true)
			r.Users[ix].PasswordResetAttempts = 0
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) IncrementPasswordResetAttempts(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordResetAttempts++
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) ResetPassword(ctx context.Context, id ID, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			r.Users[ix].PasswordResetCode = c.NewOptional(ResetCode(""), false)
			r.Users[ix].PasswordResetAttempts = 0
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	UserIDByToken  map[SessionToken]ID
	UserRepository UserRepository
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIDByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIDByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	userID, ok := r.UserIDByToken[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (userID ID, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIDByToken[token]
	if !ok {
		return userID, ErrSessionDoesNotExist
	}
	delete(r.UserIDByToken, token)
	return userID, nil
}

type FakeCoordinatesRepository struct {
	Coordinates map[ID]Coordinates
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeCoordinatesRepository() *FakeCoordinatesRepository {
	return &FakeCoordinatesRepository{Coordinates: make(map[ID]Coordinates)}
}

func (r *FakeCoordinatesRepository) GetByUserID(ctx context.Context, userID ID) (coords Coordinates, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	coords, ok := r.Coordinates[userID]
	if !ok {
		return coords, ErrCoordinatesDoNotExist
	}
	return coords, nil
}

func (r *FakeCoordinatesRepository) Set(ctx context.Context, input SetCoordinatesInput) (coords Coordinates, err error) {
	if r.ReturnError {
		return coords, fmt.Errorf("could not set coordinates for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	coords = Coordinates{
		UserID:    input.UserID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		UpdatedAt: input.UpdatedAt,
	}
	r.Coordinates[input.UserID] = coords
	return coords, nil
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetCodeGenerator struct {
	Code ResetCode
}

func NewFakeResetCodeGenerator(code string) *FakeResetCodeGenerator {
	return &FakeResetCodeGenerator{Code: ResetCode(code)}
}

func (g *FakeResetCodeGenerator) GenerateResetCode() ResetCode {
	return g.Code
}

type FakeResetCodeSender struct {
	Sent        []SentResetCode
	ReturnError bool
	lock        sync.Mutex
}

type SentResetCode struct {
	User User
	Code ResetCode
}

func NewFakeResetCodeSender() *FakeResetCodeSender {
	return &FakeResetCodeSender{}
}

func (s *FakeResetCodeSender) SendResetCode(ctx context.Context, user User, code ResetCode) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset code to user %d", user.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetCode{User: user, Code: code})
	return nil
}

func (s *FakeResetCodeSender) SentCount() int {
	return len(s.Sent)
}

func (s *FakeResetCodeSender) LastSent() SentResetCode {
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakePasswordPolicy struct {
	Violations []string
}

func NewFakePasswordPolicy() *FakePasswordPolicy {
	return &FakePasswordPolicy{}
}

func (p *FakePasswordPolicy) ValidatePassword(password RawPassword, u User) error {
	if len(p.Violations) > 0 {
		return &PasswordPolicyError{Violations: p.Violations}
	}
	return nil
}
