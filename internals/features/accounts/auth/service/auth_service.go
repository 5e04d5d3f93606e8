package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	acctService "ojtsystem_backend/internals/features/accounts/account/service"
	"ojtsystem_backend/internals/helpers/mailer"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrAccountInactive    = errors.New("account is not activated yet")
	ErrEmailNotFound      = errors.New("email not found")
	ErrInvalidCode        = errors.New("invalid code")
	ErrNotVerified        = errors.New("code not verified")
)

// CooldownError carries the remaining wait for a resend attempt.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d seconds before resending the code", e.RemainingSeconds())
}

func (e *CooldownError) RemainingSeconds() int {
	return int(e.Remaining.Round(time.Second).Seconds())
}

// Authenticate checks the password against whichever account kind owns the
// email. Inactive accounts are rejected with a distinct error after the email
// match (activation state is not secret; the password is never checked first).
func Authenticate(db *gorm.DB, email, password string) (*acctService.Account, error) {
	acct, err := acctService.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, acctService.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !acct.ActiveStatus {
		return nil, ErrAccountInactive
	}
	if !CheckPasswordHash(password, acct.Password) {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// IssueActivationCode generates and emails a fresh 6-digit activation code,
// resetting the account to pending (inactive, temp password). One send per
// address per cooldown window.
func IssueActivationCode(ctx context.Context, db *gorm.DB, mail mailer.Service, email string) error {
	email = acctService.NormalizeEmail(email)
	if remaining := gate.Remaining(opActivationSend, email); remaining > 0 {
		return &CooldownError{Remaining: remaining}
	}

	code := GenerateCode()
	if _, err := acctService.UpdateColumnsByEmail(db, email, map[string]any{
		"activation_code":  code,
		"active_status":    false,
		"is_password_temp": true,
	}); err != nil {
		if errors.Is(err, acctService.ErrAccountNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	if err := mail.Send(ctx, mailer.ActivationCodeMessage(email, code)); err != nil {
		return fmt.Errorf("send activation email: %w", err)
	}
	gate.Hold(opActivationSend, email, SendCooldown)
	return nil
}

// RedeemActivationCode flips the account active on an exact code match,
// stores a fresh hashed temporary password and emails it. The code is
// cleared on success so it cannot be redeemed twice.
func RedeemActivationCode(ctx context.Context, db *gorm.DB, mail mailer.Service, email, code string) error {
	email = acctService.NormalizeEmail(email)
	tempPassword := GenerateTempPassword()
	hashed, err := HashPassword(tempPassword)
	if err != nil {
		return err
	}

	updated := false
	for _, role := range []acctService.Role{
		acctService.RoleStudent, acctService.RoleCoordinator, acctService.RoleInstructor,
	} {
		res := db.Table(acctService.TableForRole(role)).
			Where("cca_email = ? AND activation_code = ? AND activation_code <> ''", email, code).
			Updates(map[string]any{
				"active_status":    true,
				"password":         hashed,
				"is_password_temp": true,
				"activation_code":  "",
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			updated = true
			break
		}
	}
	if !updated {
		return ErrInvalidCode
	}

	if err := mail.Send(ctx, mailer.TempPasswordMessage(email, tempPassword)); err != nil {
		// account is already active; log and let the user recover via reset
		log.Printf("[ERROR] temp password email to %s: %v", email, err)
	}
	return nil
}

// IssueRecoveryCode generates and emails a password reset code, cooldown-gated.
func IssueRecoveryCode(ctx context.Context, db *gorm.DB, mail mailer.Service, email string) error {
	email = acctService.NormalizeEmail(email)
	if _, err := acctService.FindByEmail(db, email); err != nil {
		if errors.Is(err, acctService.ErrAccountNotFound) {
			return ErrEmailNotFound
		}
		return err
	}
	if remaining := gate.Remaining(opRecoverySend, email); remaining > 0 {
		return &CooldownError{Remaining: remaining}
	}

	code := GenerateCode()
	if _, err := acctService.UpdateColumnsByEmail(db, email, map[string]any{
		"recovery_code": code,
	}); err != nil {
		return err
	}

	if err := mail.Send(ctx, mailer.RecoveryCodeMessage(email, code)); err != nil {
		return fmt.Errorf("send recovery email: %w", err)
	}
	gate.Hold(opRecoverySend, email, SendCooldown)
	return nil
}

// VerifyRecoveryCode checks the stored code. A wrong code leaves the stored
// one valid for another attempt; a match records verification for a bounded
// window so the reset step can proceed.
func VerifyRecoveryCode(db *gorm.DB, email, code string) error {
	email = acctService.NormalizeEmail(email)
	acct, err := acctService.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, acctService.ErrAccountNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	var stored *string
	if err := db.Table(acctService.TableForRole(acct.Role)).
		Select("recovery_code").
		Where("id = ?", acct.ID).
		Scan(&stored).Error; err != nil {
		return err
	}
	if stored == nil || *stored == "" || *stored != code {
		return ErrInvalidCode
	}
	gate.Hold(opRecoveryVerify, email, verifyTTL)
	return nil
}

// ResetPassword finalizes recovery: only accepted while the verification
// window from VerifyRecoveryCode is open.
func ResetPassword(db *gorm.DB, email, newPassword string) error {
	email = acctService.NormalizeEmail(email)
	if gate.Remaining(opRecoveryVerify, email) <= 0 {
		return ErrNotVerified
	}
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, err := acctService.UpdateColumnsByEmail(db, email, map[string]any{
		"password":         hashed,
		"is_password_temp": false,
		"recovery_code":    nil,
	}); err != nil {
		if errors.Is(err, acctService.ErrAccountNotFound) {
			return ErrEmailNotFound
		}
		return err
	}
	gate.Clear(opRecoveryVerify, email)
	return nil
}

// ChangePassword replaces the password for a signed-in account and drops the
// temp flag.
func ChangePassword(db *gorm.DB, role acctService.Role, accountID, newPassword string) error {
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	rows, err := acctService.UpdateColumns(db, role, accountID, map[string]any{
		"password":         hashed,
		"is_password_temp": false,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return acctService.ErrAccountNotFound
	}
	return nil
}
