package types

// LoginForm 登录表单
type LoginForm struct {
	ID       string `validate:"required" label:"账号"`
	Password string `validate:"required" label:"密码"`
}

// RegisterForm 注册表单
type RegisterForm struct {
	ID              string `validate:"required" label:"账号"`
	Password        string `validate:"required" label:"密码"`
	ConfirmPassword string `validate:"required,eqfield=Password" label:"确认密码"`
}

// PasswordForm 修改密码表单
type PasswordForm struct {
	OldPassword     string `validate:"required" label:"原密码"`
	NewPassword     string `validate:"required" label:"新密码"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword" label:"确认密码"`
}
