package fixtures

// TestMessagesJSON is a channel messages page as returned by the API,
// newest first.
const TestMessagesJSON = `[
    {
        "id": "1129072287330203708",
        "type": 0,
        "content": "build is green again",
        "channel_id": "831493021699604531",
        "author": {
            "id": "217665724271247742",
            "username": "maria",
            "global_name": "Maria",
            "discriminator": "0",
            "avatar": "a1b2c3d4e5f60718293a4b5c6d7e8f90",
            "public_flags": 0
        },
        "attachments": [],
        "embeds": [],
        "mentions": [],
        "mention_roles": [],
        "pinned": false,
        "mention_everyone": false,
        "tts": false,
        "timestamp": "2023-07-13T18:19:44.105000+00:00",
        "edited_timestamp": null,
        "flags": 0,
        "components": []
    },
    {
        "id": "1129072191095447583",
        "type": 0,
        "content": "uploading the crash log",
        "channel_id": "831493021699604531",
        "author": {
            "id": "217665724271247001",
            "username": "otto",
            "global_name": null,
            "discriminator": "0",
            "avatar": null,
            "public_flags": 0
        },
        "attachments": [
            {
                "id": "1129072191095447000",
                "filename": "crash.log",
                "size": 102400,
                "url": "https://cdn.discordapp.com/attachments/831493021699604531/1129072191095447000/crash.log",
                "proxy_url": "https://media.discordapp.net/attachments/831493021699604531/1129072191095447000/crash.log",
                "content_type": "text/plain"
            },
            {
                "id": "1129072191095447001",
                "filename": "screenshot.png",
                "size": 524288,
                "url": "https://cdn.discordapp.com/attachments/831493021699604531/1129072191095447001/screenshot.png",
                "proxy_url": "https://media.discordapp.net/attachments/831493021699604531/1129072191095447001/screenshot.png",
                "width": 1920,
                "height": 1080,
                "content_type": "image/png"
            }
        ],
        "embeds": [],
        "mentions": [],
        "mention_roles": [],
        "pinned": false,
        "mention_everyone": false,
        "tts": false,
        "timestamp": "2023-07-13T18:19:21.163000+00:00",
        "edited_timestamp": null,
        "flags": 0,
        "components": []
    },
    {
        "id": "1129071964611256371",
        "type": 0,
        "content": "nightly run complete: 312 passed, 0 failed",
        "channel_id": "831493021699604531",
        "author": {
            "id": "217665724271247550",
            "username": "janitor",
            "global_name": null,
            "discriminator": "3040",
            "avatar": null,
            "bot": true,
            "public_flags": 0
        },
        "attachments": [],
        "embeds": [],
        "mentions": [],
        "mention_roles": [],
        "pinned": false,
        "mention_everyone": false,
        "tts": false,
        "timestamp": "2023-07-13T18:18:27.155000+00:00",
        "edited_timestamp": null,
        "flags": 0,
        "components": []
    }
]`

// TestGuildJSON is a guild object as returned by the guild endpoint with
// with_counts set.
const TestGuildJSON = `{
    "id": "217665724271247742",
    "name": "hexlab",
    "icon": "5e7a12c4dd77aabc8f9e1a6b3c21f0de",
    "description": "infra and tooling chat",
    "splash": null,
    "owner_id": "217665724271247001",
    "region": "",
    "afk_channel_id": null,
    "afk_timeout": 300,
    "verification_level": 2,
    "default_message_notifications": 1,
    "roles": [],
    "emojis": [],
    "features": ["COMMUNITY", "NEWS"],
    "mfa_level": 1,
    "application_id": null,
    "system_channel_id": "831493021699604531",
    "max_members": 500000,
    "vanity_url_code": null,
    "premium_tier": 1,
    "premium_subscription_count": 3,
    "preferred_locale": "en-US",
    "approximate_member_count": 42,
    "approximate_presence_count": 7,
    "nsfw_level": 0
}`

// TestUserGuildsJSON is the users/@me/guilds page.
const TestUserGuildsJSON = `[
    {
        "id": "217665724271247742",
        "name": "hexlab",
        "icon": "5e7a12c4dd77aabc8f9e1a6b3c21f0de",
        "owner": false,
        "permissions": "140737488355327",
        "features": ["COMMUNITY", "NEWS"]
    },
    {
        "id": "407314544900101570",
        "name": "packet pushers",
        "icon": null,
        "owner": true,
        "permissions": "2251799813685247",
        "features": []
    }
]`

// TestChannelsJSON is the guild channels list: a category with a text and
// a voice channel under it, returned by the API in no particular order.
const TestChannelsJSON = `[
    {
        "id": "831493021699604531",
        "type": 0,
        "name": "general",
        "position": 0,
        "parent_id": "831493021699604000",
        "guild_id": "217665724271247742",
        "topic": "general discussion",
        "nsfw": false,
        "rate_limit_per_user": 0
    },
    {
        "id": "831493021699604000",
        "type": 4,
        "name": "text channels",
        "position": 0,
        "guild_id": "217665724271247742"
    },
    {
        "id": "831493021699604777",
        "type": 2,
        "name": "standup",
        "position": 1,
        "parent_id": "831493021699604000",
        "guild_id": "217665724271247742",
        "bitrate": 64000,
        "user_limit": 0
    }
]`

// TestMembersJSON is a guild members page.
const TestMembersJSON = `[
    {
        "user": {
            "id": "217665724271247001",
            "username": "otto",
            "global_name": null,
            "discriminator": "0",
            "avatar": null,
            "public_flags": 0
        },
        "nick": null,
        "roles": ["831493021699605000"],
        "joined_at": "2021-05-10T10:00:00.000000+00:00",
        "deaf": false,
        "mute": false
    },
    {
        "user": {
            "id": "217665724271247742",
            "username": "maria",
            "global_name": "Maria",
            "discriminator": "0",
            "avatar": "a1b2c3d4e5f60718293a4b5c6d7e8f90",
            "public_flags": 0
        },
        "nick": "mar",
        "roles": [],
        "joined_at": "2021-06-01T08:30:00.000000+00:00",
        "deaf": false,
        "mute": false
    },
    {
        "user": {
            "id": "217665724271247550",
            "username": "janitor",
            "global_name": null,
            "discriminator": "3040",
            "avatar": null,
            "bot": true,
            "public_flags": 0
        },
        "nick": null,
        "roles": [],
        "joined_at": "2022-01-15T00:00:00.000000+00:00",
        "deaf": false,
        "mute": false
    }
]`

// TestUserJSON is a single user object.
const TestUserJSON = `{
    "id": "217665724271247742",
    "username": "maria",
    "global_name": "Maria",
    "discriminator": "0",
    "avatar": "a1b2c3d4e5f60718293a4b5c6d7e8f90",
    "public_flags": 0,
    "bot": false
}`
