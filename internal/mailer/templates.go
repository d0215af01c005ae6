package mailer

import (
	"fmt"
	"time"
)

// Email bodies for the verify and password-reset flows, in both languages.
// The Arabic variants render right-to-left.

const layout = `
<table width="100%%" cellpadding="0" cellspacing="0" style="font-family:Arial, 'Segoe UI', Tahoma, sans-serif; padding:20px;" dir="%s">
  <tr><td align="center">
    <table width="460" cellpadding="0" cellspacing="0" style="width:460px; max-width:460px; border:1px solid #eee; border-radius:8px; padding:30px; background:#ffffff;">
      <tr>
        <td align="center" style="padding-bottom:20px;">
          <img src="https://aqardot.com/logoBlue.png" width="220" alt="AqarDot" />
        </td>
      </tr>
      <tr>
        <td style="font-size:20px; font-weight:600; color:#111; padding-bottom:16px;">%s</td>
      </tr>
      <tr>
        <td style="font-size:15px; color:#444; padding-bottom:24px;">%s</td>
      </tr>
      <tr>
        <td align="center" style="padding-bottom:28px;">
          <a href="%s" style="background:#2563eb; color:#fff; padding:10px 22px; border-radius:6px; text-decoration:none; font-size:15px; display:inline-block;">%s</a>
        </td>
      </tr>
      <tr>
        <td style="font-size:13px; color:#666; word-break:break-all;">
          %s<br/><br/>
          <a href="%s" style="color:#2563eb;">%s</a>
        </td>
      </tr>
    </table>
    <table width="460" cellpadding="0" cellspacing="0" style="width:460px; max-width:460px; padding-top:14px; text-align:center;">
      <tr>
        <td style="font-size:11px; color:#aaa;">All Rights Reserved © %d | AqarDot</td>
      </tr>
    </table>
  </td></tr>
</table>`

func render(dir, title, body, actionURL, button, fallback string) string {
	return fmt.Sprintf(layout, dir, title, body, actionURL, button, fallback, actionURL, actionURL, time.Now().Year())
}

func VerifyEmailBody(lang, verifyURL string) string {
	if lang == "ar" {
		return render("rtl",
			"تأكيد البريد الإلكتروني",
			"شكراً لتسجيلك في عقاردوت. اضغط على الزر أدناه لتأكيد بريدك الإلكتروني.",
			verifyURL,
			"تأكيد البريد",
			"إذا لم يعمل الزر، انسخ الرابط التالي والصقه في المتصفح:")
	}
	return render("ltr",
		"Verify your email address",
		"Thank you for signing up to AqarDot. Please click the button below to verify your email address.",
		verifyURL,
		"Verify Email",
		"If the button doesn't work, copy and paste this link into your browser:")
}

func ResetPasswordBody(lang, resetURL string) string {
	if lang == "ar" {
		return render("rtl",
			"إعادة تعيين كلمة المرور",
			"تلقينا طلباً لإعادة تعيين كلمة المرور الخاصة بحسابك. الرابط صالح لمدة 15 دقيقة.",
			resetURL,
			"إعادة تعيين كلمة المرور",
			"إذا لم يعمل الزر، انسخ الرابط التالي والصقه في المتصفح:")
	}
	return render("ltr",
		"Reset your password",
		"We received a request to reset the password for your account. This link is valid for 15 minutes.",
		resetURL,
		"Reset Password",
		"If the button doesn't work, copy and paste this link into your browser:")
}

func VerifySubject(lang string) string {
	if lang == "ar" {
		return "تأكيد البريد الإلكتروني - عقاردوت"
	}
	return "Verify your email - AqarDot"
}

func ResetSubject(lang string) string {
	if lang == "ar" {
		return "إعادة تعيين كلمة المرور - عقاردوت"
	}
	return "Reset your password - AqarDot"
}
