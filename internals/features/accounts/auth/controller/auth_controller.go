package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acctService "ojtsystem_backend/internals/features/accounts/account/service"
	"ojtsystem_backend/internals/features/accounts/auth/service"
	helper "ojtsystem_backend/internals/helpers"
	"ojtsystem_backend/internals/helpers/mailer"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB   *gorm.DB
	Mail mailer.Service
}

func NewAuthController(db *gorm.DB, mail mailer.Service) *AuthController {
	return &AuthController{DB: db, Mail: mail}
}

// Login handles the front page sign-in form. The error message is the same
// for unknown email and wrong password; only inactive accounts get a
// distinct one.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("cca_email"))
	if email == "" {
		email = strings.TrimSpace(c.FormValue("username"))
	}
	password := c.FormValue("password")
	if email == "" || password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter your email and password.")
	}

	acct, err := service.Authenticate(ac.DB, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountInactive):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Account is not activated yet.")
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid login credentials.")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed.")
		}
	}

	helper.SignIn(c, acct.ID.String(), string(acct.Role))

	return helper.JsonOK(c, "Login successful.", fiber.Map{
		"account_id":               acct.ID,
		"account_type":             acct.Role,
		"requires_password_change": acct.IsPasswordTemp,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	helper.SignOut(c)
	if helper.WantsJSON(c) {
		return helper.JsonOK(c, "You have been logged out.", nil)
	}
	return helper.RedirectWithFlash(c, "/login", "You have been logged out.", "success")
}

// ActivateAccount carries both stages of the activation flow, matching the
// original single-endpoint form contract: stage=send|resend emails a code,
// anything else redeems the submitted activation_code.
func (ac *AuthController) ActivateAccount(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("cca_email"))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter your CCA email.")
	}
	stage := c.FormValue("stage", "send")

	if stage == "send" || stage == "resend" {
		err := service.IssueActivationCode(c.UserContext(), ac.DB, ac.Mail, email)
		if err != nil {
			var cooldown *service.CooldownError
			switch {
			case errors.As(err, &cooldown):
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"success":          false,
					"message":          "Please wait before resending the code.",
					"cooldown_seconds": cooldown.RemainingSeconds(),
				})
			case errors.Is(err, service.ErrEmailNotFound):
				return helper.JsonError(c, fiber.StatusNotFound, "Email not found. Please contact the admin.")
			default:
				return helper.JsonError(c, fiber.StatusBadGateway, "Could not send the activation code. Please try again.")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":          true,
			"message":          "Activation code sent. Please check your email.",
			"cooldown_seconds": int(service.SendCooldown.Seconds()),
		})
	}

	code := strings.TrimSpace(c.FormValue("activation_code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter the activation code.")
	}
	if err := service.RedeemActivationCode(c.UserContext(), ac.DB, ac.Mail, email, code); err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activation code.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Activation failed.")
	}
	return helper.JsonOK(c, "Account activated. Temporary password sent to your email.", nil)
}

// ForgotPassword drives the three-stage recovery flow: send/resend a code,
// verify it, then reset. Reset is refused unless verification happened first.
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("reset_email"))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please enter your email.")
	}
	stage := c.FormValue("stage", "send")

	switch stage {
	case "send", "resend":
		err := service.IssueRecoveryCode(c.UserContext(), ac.DB, ac.Mail, email)
		if err != nil {
			var cooldown *service.CooldownError
			switch {
			case errors.As(err, &cooldown):
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"success":          false,
					"message":          "Please wait before resending the code.",
					"cooldown_seconds": cooldown.RemainingSeconds(),
				})
			case errors.Is(err, service.ErrEmailNotFound):
				return helper.JsonError(c, fiber.StatusNotFound, "Email not found. Please contact the admin.")
			default:
				return helper.JsonError(c, fiber.StatusBadGateway, "Could not send the reset code. Please try again.")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":          true,
			"message":          "Reset code sent. Please check your email.",
			"cooldown_seconds": int(service.SendCooldown.Seconds()),
		})

	case "verify":
		code := strings.TrimSpace(c.FormValue("recovery_code"))
		if code == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Please enter the reset code.")
		}
		if err := service.VerifyRecoveryCode(ac.DB, email, code); err != nil {
			switch {
			case errors.Is(err, service.ErrEmailNotFound):
				return helper.JsonError(c, fiber.StatusNotFound, "Email not found. Please contact the admin.")
			case errors.Is(err, service.ErrInvalidCode):
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reset code.")
			default:
				return helper.JsonError(c, fiber.StatusInternalServerError, "Verification failed.")
			}
		}
		return helper.JsonOK(c, "Code verified. You can now set a new password.", nil)

	case "reset":
		newPassword := c.FormValue("new_password")
		confirmPassword := c.FormValue("confirm_password")
		if newPassword == "" || confirmPassword == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Please fill in both password fields.")
		}
		if newPassword != confirmPassword {
			return helper.JsonError(c, fiber.StatusBadRequest, "Passwords do not match.")
		}
		if err := service.ResetPassword(ac.DB, email, newPassword); err != nil {
			switch {
			case errors.Is(err, service.ErrNotVerified):
				return helper.JsonError(c, fiber.StatusForbidden, "Please verify your reset code first.")
			case errors.Is(err, service.ErrEmailNotFound):
				return helper.JsonError(c, fiber.StatusNotFound, "Email not found. Please contact the admin.")
			default:
				return helper.JsonError(c, fiber.StatusInternalServerError, "Password reset failed.")
			}
		}
		return helper.JsonOK(c, "Password reset successful. You can now sign in.", nil)
	}

	return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Unknown stage %q.", stage))
}

// ChangeTempPassword lets a signed-in account replace its temporary password.
func (ac *AuthController) ChangeTempPassword(c *fiber.Ctx) error {
	accountID := authmw.AccountID(c)
	role, ok := acctService.ValidRole(authmw.AccountType(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
	}

	newPassword := c.FormValue("new_password")
	confirmPassword := c.FormValue("confirm_password")
	if newPassword == "" || confirmPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please fill in both password fields.")
	}
	if newPassword != confirmPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "Passwords do not match.")
	}

	if err := service.ChangePassword(ac.DB, role, accountID, newPassword); err != nil {
		if errors.Is(err, acctService.ErrAccountNotFound) {
			helper.SignOut(c)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password update failed.")
	}
	return helper.JsonOK(c, "Password updated. You can now sign in.", nil)
}
