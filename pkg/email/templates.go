package email

import "html/template"

// internalEmailTemplate is the notification delivered to the studio inbox.
// The fields are template.HTML (already sanitized), so the engine embeds them
// without escaping a second time.
const internalEmailTemplate = `
      <div style="font-family: Arial, sans-serif; padding: 16px; color: #333; max-width: 600px;">
        <div style="background: linear-gradient(135deg, #6761af, #f8973d); padding: 20px; border-radius: 10px; margin-bottom: 20px;">
          <h2 style="color: white; margin: 0; text-align: center;">📩 Nuevo mensaje de contacto desde ZentheraSoft</h2>
        </div>
        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; border-left: 4px solid #6761af;">
          <p><strong>Nombre:</strong> {{.Name}}</p>
          <p><strong>Email:</strong> {{.Email}}</p>
          {{if .Phone}}<p><strong>Teléfono:</strong> {{.Phone}}</p>{{end}}
          <p><strong>Asunto:</strong> {{.Subject}}</p>
          <hr style="margin: 16px 0; border: none; border-top: 1px solid #ddd;" />
          <p><strong>Mensaje:</strong></p>
          <div style="background: white; padding: 15px; border-radius: 5px; border: 1px solid #e0e0e0;">
            <p>{{.Message}}</p>
          </div>
        </div>
        <div style="margin-top: 20px; padding: 15px; background: #e8f4fd; border-radius: 8px; text-align: center;">
          <p style="margin: 0; color: #666; font-size: 14px;">
            Este mensaje fue enviado desde el formulario de contacto de ZentheraSoft.com
          </p>
        </div>
      </div>
    `

// confirmationEmailTemplate is the acknowledgment sent back to the submitter.
const confirmationEmailTemplate = `
        <div style="font-family: Arial, sans-serif; padding: 16px; color: #333; max-width: 600px;">
          <div style="background: linear-gradient(135deg, #6761af, #f8973d); padding: 20px; border-radius: 10px; margin-bottom: 20px; text-align: center;">
            <h2 style="color: white; margin: 0;">¡Gracias por contactarnos, {{.Name}}! 🎉</h2>
          </div>
          <div style="background: #f8f9fa; padding: 20px; border-radius: 8px;">
            <p>Hemos recibido tu mensaje y te responderemos a la brevedad.</p>
            <div style="background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #f8973d; margin: 15px 0;">
              <p><strong>Resumen de tu mensaje:</strong></p>
              <p style="color: #666;">{{.Message}}</p>
            </div>
            <p>Nuestro equipo revisará tu consulta y te contactaremos dentro de las próximas 24 horas.</p>
          </div>
          <div style="margin-top: 20px; text-align: center;">
            <p style="margin-bottom: 10px;">Mientras tanto, puedes seguirnos en nuestras redes:</p>
            <div style="margin: 15px 0;">
              <a href="https://github.com/zentherasoft" style="margin: 0 10px; text-decoration: none; color: #6761af;">GitHub</a>
              <a href="https://linkedin.com/company/zentherasoft" style="margin: 0 10px; text-decoration: none; color: #6761af;">LinkedIn</a>
              <a href="https://twitter.com/zentherasoft" style="margin: 0 10px; text-decoration: none; color: #6761af;">Twitter</a>
            </div>
          </div>
          <div style="margin-top: 30px; padding: 15px; background: #e8f4fd; border-radius: 8px; text-align: center;">
            <p style="margin: 0; font-weight: bold; color: #6761af;">Saludos,</p>
            <p style="margin: 5px 0 0 0; color: #666;">Equipo ZentheraSoft 🚀</p>
          </div>
        </div>
      `

var (
	internalTmpl     = template.Must(template.New("internal").Parse(internalEmailTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationEmailTemplate))
)
