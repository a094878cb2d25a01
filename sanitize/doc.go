/*
包 sanitize 在不可信 Unicode 文本进入下游 Token 消费系统（如 LLM）之前
对其进行安全清洗，防御利用 Unicode 复杂性的攻击。

# 概述

sanitize 针对四类攻击面提供统一防护：

- 不可见字符走私（零宽空格、零宽连接符、字变选择符等）
- Emoji 注入与变体选择符载荷
- 私有区 / 未分配 / 代理区 / 格式类码点
- Token 爆炸：单个视觉字符在某些分词方案下膨胀为异常多的 token

# 处理流水线

每次调用按固定顺序单趟执行，无反馈回路：

 1. NFKC 归一化：折叠全角、兼容连字等等价表示
 2. 扩展字素簇切分：按用户感知字符为单位切分
 3. 簇分类：按固定顺序评估安全检查，命中即拒绝
 4. 重建：被拒绝的簇整体替换为配置的替换串，顺序不变

# 核心接口

  - [Check]：单项检查接口，提供 Name / Reject，对单个字素簇做纯判定
  - [Tokenizer]：调用方注入的分词器能力，本包只依赖其契约
  - [Sanitizer]：流水线编排器，构造时完成配置合并与检查链组装

# 检查顺序

 1. 禁止字符检查（disallowed_character）
 2. Emoji 检查（emoji，AllowEmoji 为 true 时整体跳过）
 3. 危险类别检查（dangerous_category，仅 StrictMode 下启用）
 4. Token 爆炸检查（token_explosion）

所有检查均为只拒绝的独立谓词，顺序只影响诊断归因，不影响结果。

# 配置

  - [Config]：每次调用的不可变配置；自定义禁止字符与危险类别
    与默认值取并集，绝不替换默认值
  - [DefaultConfig]：max_tokens=3、replacement=""、strict_mode=true

# 错误

  - [ErrInvalidConfig]：配置非法（如 MaxTokensPerCluster < 1），在处理
    任何簇之前快速失败
  - 分词器错误：原样向上传播（带簇位置包装），不重试、不部分恢复

本包是纯同步计算，不持有跨调用状态，可安全并发使用。
*/
package sanitize
