package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/model"
	"terminal-terrace/blog/internal/model/user"
	"terminal-terrace/blog/internal/seed"
)

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "迁移数据库表结构",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(); err != nil {
				return err
			}
			if err := model.InitTable(app.DB); err != nil {
				return fmt.Errorf("迁移失败: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "数据库迁移完成")
			return nil
		},
	}
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "从 YAML 文件导入用户、分类、标签与文章",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			c, err := app.services()
			if err != nil {
				return err
			}
			result, err := seed.Apply(cmd.Context(), c.DB, f)
			if err != nil {
				return err
			}
			if err := c.Registry.Flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "导入完成: %s\n", result)
			return nil
		},
	}
}

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "用户管理",
	}
	cmd.AddCommand(newUserCreateCmd(app))
	cmd.AddCommand(newUserPasswdCmd(app))
	return cmd
}

func newUserCreateCmd(app *App) *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建用户，--role admin 创建超级管理员",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.services()
			if err != nil {
				return err
			}
			u, err := c.Auth.CreateUser(cmd.Context(), name, email, password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已创建用户 #%d %s <%s> role=%s\n", u.ID, u.Name, u.Email, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "显示名称")
	cmd.Flags().StringVar(&email, "email", "", "登录邮箱")
	cmd.Flags().StringVar(&password, "password", "", "登录密码")
	cmd.Flags().StringVar(&role, "role", user.RoleAuthor, "角色: admin 或 author")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserPasswdCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <email>",
		Short: "重置用户密码",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.services()
			if err != nil {
				return err
			}
			if err := c.Auth.ResetPassword(cmd.Context(), args[0], password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已重置 %s 的密码\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "新密码")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCacheCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "缓存管理",
	}
	cmd.AddCommand(&cobra.Command{
		Use:       "flush [resource...]",
		Short:     "清空缓存，不指定资源时清空全部",
		ValidArgs: []string{cache.Articles, cache.AdminArticles, cache.Tags, cache.Categories},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.services()
			if err != nil {
				return err
			}
			if err := c.Registry.Flush(cmd.Context(), args...); err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = c.Registry.Names()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已清空缓存: %v\n", names)
			return nil
		},
	})
	return cmd
}
