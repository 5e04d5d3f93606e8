package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "ojtsystem_backend/internals/helpers"
)

const (
	RoleStudent     = "student"
	RoleCoordinator = "coordinator"
	RoleInstructor  = "instructor"
)

// RequireRole allows only the listed account types. Rejections redirect to the
// login page with a flash message (browser navigation surface).
func RequireRole(roles ...string) fiber.Handler {
	allowed := roleSet(roles)
	return func(c *fiber.Ctx) error {
		if !bind(c, allowed) {
			helper.SetFlash(c, "Please log in to continue.", "error")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireRoleJSON is the same check for JSON endpoints: 401 body, no redirect.
func RequireRoleJSON(roles ...string) fiber.Handler {
	allowed := roleSet(roles)
	return func(c *fiber.Ctx) error {
		if !bind(c, allowed) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
		}
		return c.Next()
	}
}

// RequireStaff is shorthand for the coordinator/instructor surface.
func RequireStaff() fiber.Handler {
	return RequireRole(RoleCoordinator, RoleInstructor)
}

func RequireStaffJSON() fiber.Handler {
	return RequireRoleJSON(RoleCoordinator, RoleInstructor)
}

func roleSet(roles []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return allowed
}

func bind(c *fiber.Ctx, allowed map[string]struct{}) bool {
	id, typ := helper.CurrentAccount(c)
	if id == "" || typ == "" {
		return false
	}
	if _, ok := allowed[typ]; !ok {
		return false
	}
	c.Locals("account_id", id)
	c.Locals("account_type", typ)
	return true
}

// AccountID reads the guard-set locals.
func AccountID(c *fiber.Ctx) string {
	id, _ := c.Locals("account_id").(string)
	return id
}

func AccountType(c *fiber.Ctx) string {
	typ, _ := c.Locals("account_type").(string)
	return typ
}
